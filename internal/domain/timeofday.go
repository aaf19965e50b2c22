package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed as the offset from midnight.
// It mirrors a Postgres TIME column and is always within [0, 24h).
type TimeOfDay time.Duration

// NewTimeOfDay builds a TimeOfDay from hour, minute and second components.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second)
}

// ParseTimeOfDay parses "15:04" or "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q: want HH:MM", s)
}

// Clock returns the hour, minute and second components.
func (t TimeOfDay) Clock() (hour, minute, second int) {
	d := time.Duration(t)
	hour = int(d / time.Hour)
	minute = int(d % time.Hour / time.Minute)
	second = int(d % time.Minute / time.Second)
	return hour, minute, second
}

// On anchors t to the calendar date of day in loc.
// Only the year, month and day of day are used.
func (t TimeOfDay) On(day time.Time, loc *time.Location) time.Time {
	h, m, s := t.Clock()
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, s, 0, loc)
}

// String formats t as "15:04".
func (t TimeOfDay) String() string {
	h, m, _ := t.Clock()
	return fmt.Sprintf("%02d:%02d", h, m)
}
