package domain

import "time"

// Interval is a half-open [Start, End) range derived from one or more bookings.
// Labels lists the contributing bookings in merge order.
type Interval struct {
	Start  time.Time
	End    time.Time
	Labels []string
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// BusyBlock is a maximal run of overlapping or touching intervals.
// Blocks produced by a merge never overlap or touch each other.
type BusyBlock struct {
	Start  time.Time
	End    time.Time
	Labels []string
}

// Duration returns End - Start.
func (b BusyBlock) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Interval converts the block back to an Interval, e.g. to merge it again.
func (b BusyBlock) Interval() Interval {
	return Interval{Start: b.Start, End: b.End, Labels: append([]string(nil), b.Labels...)}
}

// SlotContext says where a free slot sits relative to the busy blocks.
type SlotContext string

const (
	ContextBeforeFirst SlotContext = "before_first"
	ContextBetween     SlotContext = "between"
	ContextAfterLast   SlotContext = "after_last"
	ContextFreeAllDay  SlotContext = "free_all_day"
)

// Gap is an uncovered part of the analysis window, before filtering.
type Gap struct {
	Start   time.Time
	End     time.Time
	Context SlotContext
}

// Duration returns End - Start.
func (g Gap) Duration() time.Duration {
	return g.End.Sub(g.Start)
}

// FreeSlot is a gap long enough to be worth suggesting something for.
type FreeSlot struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
	Context         SlotContext
}

// Window bounds the period over which gaps are computed.
type Window struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// AnalysisResult is what one itinerary analysis returns to the caller.
// TotalBookings counts normalized bookings, not raw rows.
type AnalysisResult struct {
	UserID            int64
	TotalBookings     int
	Window            Window
	FreeSlots         []FreeSlot
	ContextualMessage string
	Bookings          []Booking
}

// Categories is the activity category vocabulary offered to the traveler.
var Categories = []string{"adventurous", "relax", "luxurious", "cultural"}
