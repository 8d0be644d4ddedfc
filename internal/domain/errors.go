package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrMalformedRequest is returned when a request body is not a JSON object.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrMissingData is returned when the "data" key is absent or null.
	ErrMissingData = errors.New("missing data")

	// ErrDataNotArray is returned when "data" is present but is not an array.
	// The classifier itself reports this softly; the error exists so transport
	// layers can map it to a status code.
	ErrDataNotArray = errors.New("data must be an array")

	// ErrUnexpectedFailure wraps anything that went wrong while processing a
	// well-formed request.
	ErrUnexpectedFailure = errors.New("unexpected processing failure")

	// ErrInvalidPolicy is returned when a classifier policy value is unknown.
	ErrInvalidPolicy = errors.New("invalid classifier policy")
)
