package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/bfhl-api/internal/domain"
	"github.com/phrazzld/bfhl-api/internal/redact"
)

// User-facing error messages
const (
	MessageMalformedRequest = "Request body must be valid JSON."
	MessageMissingData      = "Missing 'data' array in request body."
	messageUnexpectedPrefix = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrMalformedRequest),
		errors.Is(err, domain.ErrMissingData),
		errors.Is(err, domain.ErrDataNotArray):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message reported to the client for err.
// Unexpected failures include a redacted description of the underlying error.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return messageUnexpectedPrefix + "."
	}

	switch {
	case errors.Is(err, domain.ErrMalformedRequest):
		return MessageMalformedRequest
	case errors.Is(err, domain.ErrMissingData):
		return MessageMissingData
	case errors.Is(err, domain.ErrDataNotArray):
		return domain.DataNotArrayMessage
	default:
		return messageUnexpectedPrefix + ": " + redact.Error(err)
	}
}
