package timeline

import (
	"fmt"
	"time"

	"github.com/pkordes/travel-assistant/backend/internal/domain"
)

// WindowPolicy selects how the analysis window is derived from "now".
type WindowPolicy string

const (
	// PolicyRestOfDay covers from now (or the start of the day, if later)
	// to the end of the day. Once the day is over it rolls to tomorrow.
	PolicyRestOfDay WindowPolicy = "rest_of_day"

	// PolicyFullDay covers today's whole waking day regardless of now.
	PolicyFullDay WindowPolicy = "full_day"
)

// ParseWindowPolicy validates a policy name.
func ParseWindowPolicy(s string) (WindowPolicy, error) {
	switch p := WindowPolicy(s); p {
	case PolicyRestOfDay, PolicyFullDay:
		return p, nil
	}
	return "", fmt.Errorf("unknown analysis window policy %q: want %s or %s", s, PolicyRestOfDay, PolicyFullDay)
}

// WindowConfig is the analysis window policy plus the waking-day bounds it
// works within. DayEnd must be after DayStart.
type WindowConfig struct {
	Policy   WindowPolicy
	DayStart domain.TimeOfDay
	DayEnd   domain.TimeOfDay
	Location *time.Location
}

// Resolve computes the window for a request made at now.
func (c WindowConfig) Resolve(now time.Time) domain.Window {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc).Truncate(time.Minute)

	start, end := c.DayStart.On(now, loc), c.DayEnd.On(now, loc)
	if c.Policy == PolicyFullDay {
		return domain.Window{Start: start, End: end}
	}

	if !now.Before(end) {
		next := now.AddDate(0, 0, 1)
		return domain.Window{Start: c.DayStart.On(next, loc), End: c.DayEnd.On(next, loc)}
	}
	if now.After(start) {
		start = now
	}
	return domain.Window{Start: start, End: end}
}
