// Package domain contains the core data types for the travel assistant.
// This package has zero external dependencies and is imported by every other
// internal package (timeline, repo, service, handler).
package domain

import "time"

// BookingKind tags which source table a booking came from.
type BookingKind string

const (
	KindHotel    BookingKind = "hotel"
	KindFlight   BookingKind = "flight"
	KindActivity BookingKind = "activity"
)

// StatusActive is the only booking status that takes part in analysis.
const StatusActive = "active"

// HotelBooking is a raw hotel_bookings row.
// Date and time columns are nullable; nil means the value was never recorded.
type HotelBooking struct {
	ID           int64
	BookingRef   string
	HotelName    string
	Location     string
	CheckInDate  *time.Time
	CheckInTime  *TimeOfDay
	CheckOutDate *time.Time
	CheckOutTime *TimeOfDay
	Status       string
}

// FlightBooking is a raw flight_bookings row.
// DurationMinutes is the scheduled block time, 0 when unknown.
type FlightBooking struct {
	ID              int64
	BookingRef      string
	DepartureCity   string
	ArrivalCity     string
	DepartureDate   *time.Time
	DepartureTime   *TimeOfDay
	ArrivalDate     *time.Time
	ArrivalTime     *TimeOfDay
	DurationMinutes int
	Status          string
}

// ActivityBooking is a raw activity_bookings row. Activities happen on a
// single date; an end time earlier than the start time means past midnight.
type ActivityBooking struct {
	ID              int64
	BookingRef      string
	ActivityName    string
	Location        string
	ActivityDate    *time.Time
	StartTime       *TimeOfDay
	EndTime         *TimeOfDay
	DurationMinutes int
	Status          string
}

// Span is the kind-independent view of a raw booking: where it came from,
// how to label it, and the date/time parts its interval is built from.
type Span struct {
	Kind       BookingKind
	SourceID   int64
	BookingRef string
	Title      string
	Location   string
	Label      string
	Status     string

	StartDate *time.Time
	StartTime *TimeOfDay
	// EndDate nil means "same day as StartDate".
	EndDate *time.Time
	EndTime *TimeOfDay
	// Duration is used to derive the end when EndTime is missing. Zero when unknown.
	Duration time.Duration
}

// Record is implemented by every raw booking shape.
type Record interface {
	Span() Span
}

// Span implements Record.
func (h HotelBooking) Span() Span {
	return Span{
		Kind:       KindHotel,
		SourceID:   h.ID,
		BookingRef: h.BookingRef,
		Title:      h.HotelName,
		Location:   h.Location,
		Label:      "Hotel: " + h.HotelName,
		Status:     h.Status,
		StartDate:  h.CheckInDate,
		StartTime:  h.CheckInTime,
		EndDate:    h.CheckOutDate,
		EndTime:    h.CheckOutTime,
	}
}

// Span implements Record.
func (f FlightBooking) Span() Span {
	return Span{
		Kind:       KindFlight,
		SourceID:   f.ID,
		BookingRef: f.BookingRef,
		Title:      f.DepartureCity + " to " + f.ArrivalCity,
		Location:   f.DepartureCity + ", " + f.ArrivalCity,
		Label:      "Flight: " + f.DepartureCity + " → " + f.ArrivalCity,
		Status:     f.Status,
		StartDate:  f.DepartureDate,
		StartTime:  f.DepartureTime,
		EndDate:    f.ArrivalDate,
		EndTime:    f.ArrivalTime,
		Duration:   time.Duration(f.DurationMinutes) * time.Minute,
	}
}

// Span implements Record.
func (a ActivityBooking) Span() Span {
	return Span{
		Kind:       KindActivity,
		SourceID:   a.ID,
		BookingRef: a.BookingRef,
		Title:      a.ActivityName,
		Location:   a.Location,
		Label:      "Activity: " + a.ActivityName,
		Status:     a.Status,
		StartDate:  a.ActivityDate,
		StartTime:  a.StartTime,
		EndTime:    a.EndTime,
		Duration:   time.Duration(a.DurationMinutes) * time.Minute,
	}
}

// BookingSet is everything the booking repository returns for one user.
type BookingSet struct {
	Hotels     []HotelBooking
	Flights    []FlightBooking
	Activities []ActivityBooking
}

// Records flattens the set into hotels, then flights, then activities,
// preserving the order each list arrived in.
func (s BookingSet) Records() []Record {
	out := make([]Record, 0, s.Len())
	for _, h := range s.Hotels {
		out = append(out, h)
	}
	for _, f := range s.Flights {
		out = append(out, f)
	}
	for _, a := range s.Activities {
		out = append(out, a)
	}
	return out
}

// Len returns the raw record count across all three kinds.
func (s BookingSet) Len() int {
	return len(s.Hotels) + len(s.Flights) + len(s.Activities)
}

// Booking is a normalized, active booking with absolute start and end.
// Start <= End always holds.
type Booking struct {
	Kind       BookingKind
	SourceID   int64
	BookingRef string
	Title      string
	Location   string
	Label      string
	Start      time.Time
	End        time.Time
	Status     string
}
