package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// user has no booking history at all.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails validation
// (e.g. missing or non-positive user_id).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ErrUnavailable is returned by the service when the booking repository
// cannot be reached or fails mid-fetch. It is surfaced, never retried here.
// Handlers should map this to HTTP 500 with a generic message.
var ErrUnavailable = errors.New("booking repository unavailable")
