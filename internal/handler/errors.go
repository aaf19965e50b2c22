package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/travel-assistant/backend/internal/domain"
)

// genericFailure is the only thing a client learns about a server-side fault.
const genericFailure = "Unable to analyze your itinerary at this time."

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, envelope{
		Message: message,
		Error:   &errorDetail{Code: code, Message: message},
	})
}

// requestError rejects a request before it reaches the service layer
// (missing or malformed body, bad path parameter).
func requestError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, "validation_error", message)
}

// serviceError maps an Analyze error to a response. Anything that is not a
// validation or not-found error is logged and answered with a generic 500.
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "No bookings found for this user.")
	default:
		code := "internal_error"
		if errors.Is(err, domain.ErrUnavailable) {
			code = "unavailable"
		}
		s.logger.ErrorContext(r.Context(), "itinerary analysis failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, code, genericFailure)
	}
}

// unwrapMessage extracts the human-readable part of a wrapped validation error.
// e.g. "service.ItineraryService.Analyze: validation error: user_id must be ..." → "user_id must be ..."
func unwrapMessage(err error) string {
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 && i+len(marker) < len(msg) {
		return msg[i+len(marker):]
	}
	return msg
}
