package handler

import (
	"time"

	"github.com/pkordes/travel-assistant/backend/internal/domain"
)

// analyzeRequest is the body of POST /ai/itinerary/analyze.
// UserID is a pointer so a missing field can be told apart from zero.
type analyzeRequest struct {
	UserID *int64 `json:"user_id"`
}

// envelope wraps every JSON response.
type envelope struct {
	Status  bool         `json:"status"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Error   *errorDetail `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type analysisData struct {
	UserID            int64          `json:"user_id"`
	TotalBookings     int            `json:"total_bookings"`
	FreeTimeSlots     []freeSlotData `json:"free_time_slots"`
	ContextualMessage string         `json:"contextual_message"`
	Bookings          []bookingData  `json:"bookings"`
}

type freeSlotData struct {
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Context         string `json:"context"`
}

type bookingData struct {
	BookingType string `json:"booking_type"`
	ID          int64  `json:"id"`
	BookingID   string `json:"booking_id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Label       string `json:"label"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
}

// analysisToResponse maps a domain result to its wire shape. Both lists are
// always arrays, never null.
func analysisToResponse(res domain.AnalysisResult) analysisData {
	out := analysisData{
		UserID:            res.UserID,
		TotalBookings:     res.TotalBookings,
		FreeTimeSlots:     make([]freeSlotData, 0, len(res.FreeSlots)),
		ContextualMessage: res.ContextualMessage,
		Bookings:          make([]bookingData, 0, len(res.Bookings)),
	}
	for _, fs := range res.FreeSlots {
		out.FreeTimeSlots = append(out.FreeTimeSlots, freeSlotData{
			StartTime:       fs.Start.Format(time.RFC3339),
			EndTime:         fs.End.Format(time.RFC3339),
			DurationMinutes: fs.DurationMinutes,
			Context:         string(fs.Context),
		})
	}
	for _, b := range res.Bookings {
		out.Bookings = append(out.Bookings, bookingData{
			BookingType: string(b.Kind),
			ID:          b.SourceID,
			BookingID:   b.BookingRef,
			Title:       b.Title,
			Location:    b.Location,
			Label:       b.Label,
			StartTime:   b.Start.Format(time.RFC3339),
			EndTime:     b.End.Format(time.RFC3339),
			Status:      b.Status,
		})
	}
	return out
}
