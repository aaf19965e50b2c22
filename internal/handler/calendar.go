package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/emersion/go-ical"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/travel-assistant/backend/internal/domain"
	"github.com/pkordes/travel-assistant/backend/internal/timeline"
)

const calendarProductID = "-//travel-assistant//itinerary//EN"

// GetItineraryCalendar handles GET /ai/itinerary/{user_id}/calendar.ics.
// It runs the same analysis as the JSON endpoint and renders bookings as
// busy events and free slots as transparent ones.
func (s *Server) GetItineraryCalendar(w http.ResponseWriter, r *http.Request) {
	var userID int64
	err := runtime.BindStyledParameterWithOptions("simple", "user_id", chi.URLParam(r, "user_id"), &userID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		requestError(w, "user_id must be an integer")
		return
	}

	res, err := s.itinerary.Analyze(r.Context(), userID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(buildCalendar(res, s.now())); err != nil {
		s.serviceError(w, r, fmt.Errorf("handler.Server.GetItineraryCalendar: encode: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary-`+strconv.FormatInt(userID, 10)+`.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// buildCalendar renders an analysis as a VCALENDAR with all times in UTC.
// Booking UIDs are stable across requests; free slots are recomputed every
// time and get fresh UIDs.
func buildCalendar(res domain.AnalysisResult, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, calendarProductID)

	for _, b := range res.Bookings {
		ev := newEvent(fmt.Sprintf("%s-%d@travel-assistant", b.Kind, b.SourceID), stamp)
		ev.Props.SetText(ical.PropSummary, b.Label)
		ev.Props.SetDateTime(ical.PropDateTimeStart, b.Start.UTC())
		ev.Props.SetDateTime(ical.PropDateTimeEnd, b.End.UTC())
		ev.Props.SetText(propTransparency, "OPAQUE")
		if b.Location != "" {
			ev.Props.SetText(ical.PropLocation, b.Location)
		}
		if b.BookingRef != "" {
			ev.Props.SetText(ical.PropDescription, "Booking reference "+b.BookingRef)
		}
		cal.Children = append(cal.Children, ev)
	}

	selected, ok := timeline.SelectSlot(res.FreeSlots)
	for _, fs := range res.FreeSlots {
		ev := newEvent(uuid.NewString()+"@travel-assistant", stamp)
		ev.Props.SetText(ical.PropSummary, fmt.Sprintf("Free time (%d min)", fs.DurationMinutes))
		ev.Props.SetDateTime(ical.PropDateTimeStart, fs.Start.UTC())
		ev.Props.SetDateTime(ical.PropDateTimeEnd, fs.End.UTC())
		ev.Props.SetText(propTransparency, "TRANSPARENT")
		ev.Props.SetText(ical.PropCategories, string(fs.Context))
		if ok && fs.Start.Equal(selected.Start) && fs.End.Equal(selected.End) {
			ev.Props.SetText(ical.PropDescription, res.ContextualMessage)
		}
		cal.Children = append(cal.Children, ev)
	}
	return cal
}

// propTransparency is the RFC 5545 TRANSP property.
const propTransparency = "TRANSP"

func newEvent(uid string, stamp time.Time) *ical.Component {
	ev := ical.NewComponent(ical.CompEvent)
	ev.Props.SetText(ical.PropUID, uid)
	ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	return ev
}
