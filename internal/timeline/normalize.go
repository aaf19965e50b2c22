// Package timeline turns a traveler's bookings into busy blocks, free slots
// and a suggestion message. Everything here is pure: no I/O, no clock reads,
// no package-level configuration. Callers pass thresholds and windows in.
package timeline

import (
	"time"

	"github.com/pkordes/travel-assistant/backend/internal/domain"
)

// Skip reasons reported by Normalize.
const (
	ReasonMissingStart   = "missing start date or time"
	ReasonMissingEnd     = "missing end time and duration"
	ReasonEndBeforeStart = "end before start"
)

// Skip records an active booking that could not be turned into an interval.
type Skip struct {
	Kind     domain.BookingKind
	SourceID int64
	Reason   string
}

// Normalized is the output of Normalize. Bookings and Intervals are parallel:
// Intervals[i] was built from Bookings[i].
type Normalized struct {
	Bookings  []domain.Booking
	Intervals []domain.Interval
	Skipped   []Skip
}

// Normalize converts raw hotel, flight and activity rows into absolute
// intervals interpreted in loc. Non-active rows are dropped silently;
// active rows without a usable start or end are dropped and reported in
// Skipped. Output order follows set.Records().
func Normalize(set domain.BookingSet, loc *time.Location) Normalized {
	if loc == nil {
		loc = time.UTC
	}

	out := Normalized{
		Bookings:  make([]domain.Booking, 0, set.Len()),
		Intervals: make([]domain.Interval, 0, set.Len()),
	}
	for _, rec := range set.Records() {
		sp := rec.Span()
		if sp.Status != domain.StatusActive {
			continue
		}

		b, reason := resolve(sp, loc)
		if reason != "" {
			out.Skipped = append(out.Skipped, Skip{Kind: sp.Kind, SourceID: sp.SourceID, Reason: reason})
			continue
		}

		out.Bookings = append(out.Bookings, b)
		out.Intervals = append(out.Intervals, domain.Interval{
			Start:  b.Start,
			End:    b.End,
			Labels: []string{b.Label},
		})
	}
	return out
}

// resolve builds the absolute start/end for one span. A non-empty reason
// means the span must be skipped.
func resolve(sp domain.Span, loc *time.Location) (domain.Booking, string) {
	if sp.StartDate == nil || sp.StartTime == nil {
		return domain.Booking{}, ReasonMissingStart
	}
	start := sp.StartTime.On(*sp.StartDate, loc)

	var end time.Time
	switch {
	case sp.EndTime != nil:
		endDate := *sp.StartDate
		explicit := false
		if sp.EndDate != nil {
			endDate = *sp.EndDate
			explicit = !sameDate(endDate, *sp.StartDate)
		}
		end = sp.EndTime.On(endDate, loc)
		if end.Before(start) {
			// Same-day clock times that go backwards span midnight.
			// An explicit end date that is still too early is bad data.
			if explicit {
				return domain.Booking{}, ReasonEndBeforeStart
			}
			end = sp.EndTime.On(endDate.AddDate(0, 0, 1), loc)
		}
	case sp.Duration > 0:
		end = start.Add(sp.Duration)
	default:
		return domain.Booking{}, ReasonMissingEnd
	}

	return domain.Booking{
		Kind:       sp.Kind,
		SourceID:   sp.SourceID,
		BookingRef: sp.BookingRef,
		Title:      sp.Title,
		Location:   sp.Location,
		Label:      sp.Label,
		Start:      start,
		End:        end,
		Status:     sp.Status,
	}, ""
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
