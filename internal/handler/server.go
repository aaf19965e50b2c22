// Package handler implements the HTTP surface of the travel assistant API.
// All handlers are methods on Server. They are split into files by concern
// (health.go, itinerary.go, calendar.go) but share the same dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travel-assistant/backend/internal/domain"
	"github.com/pkordes/travel-assistant/backend/spec"
)

// ItineraryAnalyzer is the business operation the itinerary handlers depend on.
// Defining it here, in the consumer package, lets handler tests inject a mock
// without touching the database or service layer.
type ItineraryAnalyzer interface {
	Analyze(ctx context.Context, userID int64) (domain.AnalysisResult, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	itinerary ItineraryAnalyzer
	logger    *slog.Logger
	now       func() time.Time
}

// NewServer constructs the Server. A nil logger falls back to slog.Default().
func NewServer(itinerary ItineraryAnalyzer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{itinerary: itinerary, logger: logger, now: time.Now}
}

// Routes registers every endpoint on r. Middleware is the caller's concern.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)
	r.Route("/ai/itinerary", func(r chi.Router) {
		r.Post("/analyze", s.AnalyzeItinerary)
		r.Get("/{user_id}/calendar.ics", s.GetItineraryCalendar)
	})
}

// Handler returns a bare router with all routes registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.Routes(r)
	return r
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
