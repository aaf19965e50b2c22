package middleware

import (
	"encoding/json"
	"net/http"
)

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Error   errorDetail `json:"error"`
}

// writeError writes the API's error envelope for requests rejected before
// they reach a handler.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		Message: message,
		Error:   errorDetail{Code: code, Message: message},
	})
}
