package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-assistant/backend/internal/domain"
	"github.com/pkordes/travel-assistant/backend/internal/handler"
	"github.com/pkordes/travel-assistant/backend/internal/middleware"
)

// ---- mock ItineraryAnalyzer ------------------------------------------------

type mockAnalyzer struct {
	analyze func(ctx context.Context, userID int64) (domain.AnalysisResult, error)
}

func (m *mockAnalyzer) Analyze(ctx context.Context, userID int64) (domain.AnalysisResult, error) {
	return m.analyze(ctx, userID)
}

// compile-time check: mockAnalyzer must satisfy handler.ItineraryAnalyzer.
var _ handler.ItineraryAnalyzer = (*mockAnalyzer)(nil)

// ---- helpers ---------------------------------------------------------------

var lisbon = time.FixedZone("WEST", 60*60)

func at(h, m int) time.Time {
	return time.Date(2025, 6, 1, h, m, 0, 0, lisbon)
}

func resultFixture(userID int64) domain.AnalysisResult {
	return domain.AnalysisResult{
		UserID:        userID,
		TotalBookings: 1,
		FreeSlots: []domain.FreeSlot{
			{Start: at(8, 0), End: at(9, 0), DurationMinutes: 60, Context: domain.ContextBeforeFirst},
			{Start: at(12, 0), End: at(22, 0), DurationMinutes: 600, Context: domain.ContextAfterLast},
		},
		ContextualMessage: "You've got a big chunk of free time this afternoon.",
		Bookings: []domain.Booking{{
			Kind:       domain.KindActivity,
			SourceID:   11,
			BookingRef: "ACT-11",
			Title:      "Tram tour",
			Location:   "Alfama",
			Label:      "Activity: Tram tour",
			Start:      at(9, 0),
			End:        at(12, 0),
			Status:     domain.StatusActive,
		}},
	}
}

func echoAnalyzer() *mockAnalyzer {
	return &mockAnalyzer{
		analyze: func(_ context.Context, userID int64) (domain.AnalysisResult, error) {
			return resultFixture(userID), nil
		},
	}
}

func failingAnalyzer(err error) *mockAnalyzer {
	return &mockAnalyzer{
		analyze: func(context.Context, int64) (domain.AnalysisResult, error) {
			return domain.AnalysisResult{}, err
		},
	}
}

func newHTTPHandler(a handler.ItineraryAnalyzer, logs io.Writer) http.Handler {
	if logs == nil {
		logs = io.Discard
	}
	return handler.NewServer(a, slog.New(slog.NewJSONHandler(logs, nil))).Handler()
}

func postAnalyze(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/ai/itinerary/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type errorBody struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Status)
	return body
}

// ---- POST /ai/itinerary/analyze ---------------------------------------------

func TestAnalyzeItinerary_OK(t *testing.T) {
	var gotID int64
	a := &mockAnalyzer{analyze: func(_ context.Context, userID int64) (domain.AnalysisResult, error) {
		gotID = userID
		return resultFixture(userID), nil
	}}

	rec := postAnalyze(newHTTPHandler(a, nil), `{"user_id": 42}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, int64(42), gotID)

	var body struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			UserID        int64 `json:"user_id"`
			TotalBookings int   `json:"total_bookings"`
			FreeTimeSlots []struct {
				StartTime       string `json:"start_time"`
				EndTime         string `json:"end_time"`
				DurationMinutes int    `json:"duration_minutes"`
				Context         string `json:"context"`
			} `json:"free_time_slots"`
			ContextualMessage string           `json:"contextual_message"`
			Bookings          []map[string]any `json:"bookings"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.True(t, body.Status)
	assert.Equal(t, "Itinerary analyzed successfully", body.Message)
	assert.Equal(t, int64(42), body.Data.UserID)
	assert.Equal(t, 1, body.Data.TotalBookings)
	require.Len(t, body.Data.FreeTimeSlots, 2)
	assert.Equal(t, "2025-06-01T08:00:00+01:00", body.Data.FreeTimeSlots[0].StartTime)
	assert.Equal(t, "2025-06-01T09:00:00+01:00", body.Data.FreeTimeSlots[0].EndTime)
	assert.Equal(t, 60, body.Data.FreeTimeSlots[0].DurationMinutes)
	assert.Equal(t, "before_first", body.Data.FreeTimeSlots[0].Context)
	assert.Equal(t, "You've got a big chunk of free time this afternoon.", body.Data.ContextualMessage)

	require.Len(t, body.Data.Bookings, 1)
	b := body.Data.Bookings[0]
	assert.Equal(t, "activity", b["booking_type"])
	assert.EqualValues(t, 11, b["id"])
	assert.Equal(t, "ACT-11", b["booking_id"])
	assert.Equal(t, "Activity: Tram tour", b["label"])
	assert.Equal(t, "2025-06-01T09:00:00+01:00", b["start_time"])
	assert.Equal(t, "active", b["status"])
}

func TestAnalyzeItinerary_TrailingWhitespaceAccepted(t *testing.T) {
	rec := postAnalyze(newHTTPHandler(echoAnalyzer(), nil), "{\"user_id\": 1}\n\t ")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnalyzeItinerary_EmptyListsAreArrays(t *testing.T) {
	a := &mockAnalyzer{analyze: func(_ context.Context, userID int64) (domain.AnalysisResult, error) {
		return domain.AnalysisResult{UserID: userID}, nil
	}}

	rec := postAnalyze(newHTTPHandler(a, nil), `{"user_id": 1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"free_time_slots":[]`)
	assert.Contains(t, rec.Body.String(), `"bookings":[]`)
}

func TestAnalyzeItinerary_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"empty body", ``, "request body is required"},
		{"not json", `user_id=1`, "request body must be valid JSON"},
		{"missing user_id", `{}`, "user_id is required"},
		{"null user_id", `{"user_id": null}`, "user_id is required"},
		{"string user_id", `{"user_id": "abc"}`, "user_id must be an integer"},
		{"fractional user_id", `{"user_id": 1.5}`, "user_id must be an integer"},
		{"trailing garbage", `{"user_id": 1}garbage`, "request body must be valid JSON"},
		{"second object", `{"user_id": 1} {"user_id": 2}`, "request body must be valid JSON"},
		{"stray brace", `{"user_id": 1}}`, "request body must be valid JSON"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := &mockAnalyzer{analyze: func(context.Context, int64) (domain.AnalysisResult, error) {
				t.Fatal("analyzer must not be called")
				return domain.AnalysisResult{}, nil
			}}

			rec := postAnalyze(newHTTPHandler(a, nil), tc.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, "validation_error", body.Error.Code)
			assert.Equal(t, tc.message, body.Error.Message)
		})
	}
}

func TestAnalyzeItinerary_ServiceValidationError(t *testing.T) {
	err := fmt.Errorf("service.ItineraryService.Analyze: %w: user_id must be a positive integer", domain.ErrValidation)

	rec := postAnalyze(newHTTPHandler(failingAnalyzer(err), nil), `{"user_id": -1}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "user_id must be a positive integer", body.Error.Message)
}

func TestAnalyzeItinerary_NotFound(t *testing.T) {
	err := fmt.Errorf("service.ItineraryService.Analyze: %w", domain.ErrNotFound)

	rec := postAnalyze(newHTTPHandler(failingAnalyzer(err), nil), `{"user_id": 9}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error.Code)
}

func TestAnalyzeItinerary_InternalFaultsAreGeneric(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"unavailable", fmt.Errorf("service: %w: %w", domain.ErrUnavailable, errors.New("dial tcp 10.0.0.5:5432: refused")), "unavailable"},
		{"unexpected", errors.New("dial tcp 10.0.0.5:5432: refused"), "internal_error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var logs strings.Builder

			rec := postAnalyze(newHTTPHandler(failingAnalyzer(tc.err), &logs), `{"user_id": 9}`)

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			raw := rec.Body.String()
			assert.NotContains(t, raw, "10.0.0.5", "internals must not leak to the client")

			var body errorBody
			require.NoError(t, json.Unmarshal([]byte(raw), &body))
			assert.Equal(t, tc.code, body.Error.Code)
			assert.Equal(t, "Unable to analyze your itinerary at this time.", body.Error.Message)
			assert.Contains(t, logs.String(), "10.0.0.5", "the cause is logged server-side")
		})
	}
}

func TestAnalyzeItinerary_BodyTooLarge(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(16)(newHTTPHandler(echoAnalyzer(), nil))

	req := httptest.NewRequest(http.MethodPost, "/ai/itinerary/analyze",
		strings.NewReader(`{"user_id": 1, "padding": "`+strings.Repeat("x", 64)+`"}`))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "payload_too_large", decodeError(t, rec).Error.Code)
}
