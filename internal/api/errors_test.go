package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/bfhl-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"malformed", domain.ErrMalformedRequest, http.StatusBadRequest},
		{"wrapped malformed", fmt.Errorf("decode: %w", domain.ErrMalformedRequest), http.StatusBadRequest},
		{"missing data", domain.ErrMissingData, http.StatusBadRequest},
		{"data not array", domain.ErrDataNotArray, http.StatusBadRequest},
		{"unexpected", domain.ErrUnexpectedFailure, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "An unexpected error occurred."},
		{"malformed", domain.ErrMalformedRequest, "Request body must be valid JSON."},
		{"missing data", fmt.Errorf("schema: %w", domain.ErrMissingData), "Missing 'data' array in request body."},
		{"data not array", domain.ErrDataNotArray, "Input 'data' must be an array."},
		{"unexpected", errors.New("boom"), "An unexpected error occurred: boom"},
		{
			"unexpected with path",
			errors.New("open /etc/bfhl/config.yaml: permission denied"),
			"An unexpected error occurred: open [REDACTED_PATH]: permission denied",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}
}
