package timeline_test

import (
	"time"

	"github.com/pkordes/travel-assistant/backend/internal/domain"
)

// baseDay is the fixed calendar date every timeline test is anchored to.
var baseDay = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

// at returns baseDay at hh:mm UTC.
func at(hh, mm int) time.Time {
	return baseDay.Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute)
}

// iv builds a single-label interval on baseDay.
func iv(label string, startH, startM, endH, endM int) domain.Interval {
	return domain.Interval{Start: at(startH, startM), End: at(endH, endM), Labels: []string{label}}
}

// window returns a window on baseDay from startH:00 to endH:00.
func window(startH, endH int) domain.Window {
	return domain.Window{Start: at(startH, 0), End: at(endH, 0)}
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func todPtr(hh, mm int) *domain.TimeOfDay {
	t := domain.NewTimeOfDay(hh, mm, 0)
	return &t
}
