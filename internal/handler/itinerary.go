package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// AnalyzeItinerary handles POST /ai/itinerary/analyze.
func (s *Server) AnalyzeItinerary(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSONBody(r, &req); err != nil {
		var (
			maxErr  *http.MaxBytesError
			typeErr *json.UnmarshalTypeError
		)
		switch {
		case errors.As(err, &maxErr):
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "Request body too large.")
		case errors.As(err, &typeErr):
			requestError(w, "user_id must be an integer")
		case errors.Is(err, io.EOF):
			requestError(w, "request body is required")
		default:
			requestError(w, "request body must be valid JSON")
		}
		return
	}
	if req.UserID == nil {
		requestError(w, "user_id is required")
		return
	}

	res, err := s.itinerary.Analyze(r.Context(), *req.UserID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Status:  true,
		Message: "Itinerary analyzed successfully",
		Data:    analysisToResponse(res),
	})
}

// errTrailingData rejects a body with more content after the JSON object.
var errTrailingData = errors.New("unexpected data after JSON body")

// decodeJSONBody decodes exactly one JSON value from the request body.
func decodeJSONBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	switch _, err := dec.Token(); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	default:
		return errTrailingData
	}
}
