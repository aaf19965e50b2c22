// Package service contains the business logic for the travel assistant API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkordes/travel-assistant/backend/internal/domain"
	"github.com/pkordes/travel-assistant/backend/internal/repo"
	"github.com/pkordes/travel-assistant/backend/internal/timeline"
)

// AnalysisOptions carries the tunables of an itinerary analysis.
type AnalysisOptions struct {
	// MinFreeSlotMinutes drops shorter gaps. Zero means the default of 30.
	MinFreeSlotMinutes int
	Window             timeline.WindowConfig
	// FetchTimeout bounds the repository call. Zero means no extra deadline.
	FetchTimeout time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// ItineraryService analyzes a traveler's bookings for free time.
type ItineraryService struct {
	repo   repo.BookingRepo
	opts   AnalysisOptions
	logger *slog.Logger
}

// NewItineraryService constructs an ItineraryService. A nil logger falls back
// to slog.Default().
func NewItineraryService(r repo.BookingRepo, opts AnalysisOptions, logger *slog.Logger) *ItineraryService {
	if opts.MinFreeSlotMinutes <= 0 {
		opts.MinFreeSlotMinutes = timeline.DefaultMinFreeSlotMinutes
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ItineraryService{repo: r, opts: opts, logger: logger}
}

// Analyze fetches the user's active bookings and computes free slots inside
// the analysis window together with a suggestion message.
//
// Errors wrap domain.ErrValidation for a non-positive userID,
// domain.ErrNotFound when the user has no booking history, and
// domain.ErrUnavailable for any other repository failure.
func (s *ItineraryService) Analyze(ctx context.Context, userID int64) (domain.AnalysisResult, error) {
	if userID <= 0 {
		return domain.AnalysisResult{}, fmt.Errorf("service.ItineraryService.Analyze: %w: user_id must be a positive integer", domain.ErrValidation)
	}

	set, err := s.fetch(ctx, userID)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	loc := s.opts.Window.Location
	if loc == nil {
		loc = time.UTC
	}
	norm := timeline.Normalize(set, loc)
	for _, sk := range norm.Skipped {
		s.logger.WarnContext(ctx, "skipping booking",
			"user_id", userID,
			"kind", sk.Kind,
			"source_id", sk.SourceID,
			"reason", sk.Reason,
		)
	}

	now := s.opts.Now()
	window := s.opts.Window.Resolve(now)
	blocks := timeline.Merge(norm.Intervals)
	gaps := timeline.DetectGaps(blocks, window)
	slots := timeline.Classify(gaps, s.opts.MinFreeSlotMinutes)

	s.logger.DebugContext(ctx, "itinerary analyzed",
		"user_id", userID,
		"raw_bookings", set.Len(),
		"bookings", len(norm.Bookings),
		"skipped", len(norm.Skipped),
		"busy_blocks", len(blocks),
		"gaps", len(gaps),
		"free_slots", len(slots),
		"window_start", window.Start,
		"window_end", window.End,
	)

	return domain.AnalysisResult{
		UserID:            userID,
		TotalBookings:     len(norm.Bookings),
		Window:            window,
		FreeSlots:         slots,
		ContextualMessage: timeline.ComposeMessage(slots, now),
		Bookings:          norm.Bookings,
	}, nil
}

// fetch reads the booking snapshot, passing ErrNotFound through and
// classifying every other failure as ErrUnavailable.
func (s *ItineraryService) fetch(ctx context.Context, userID int64) (domain.BookingSet, error) {
	if s.opts.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.FetchTimeout)
		defer cancel()
	}

	set, err := s.repo.FetchActiveBookings(ctx, userID)
	switch {
	case err == nil:
		return set, nil
	case errors.Is(err, domain.ErrNotFound):
		return domain.BookingSet{}, fmt.Errorf("service.ItineraryService.Analyze: %w", err)
	default:
		return domain.BookingSet{}, fmt.Errorf("service.ItineraryService.Analyze: %w: %w", domain.ErrUnavailable, err)
	}
}
