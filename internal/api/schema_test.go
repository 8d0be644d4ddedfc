package api

import (
	"testing"

	"github.com/phrazzld/bfhl-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeValidator(t *testing.T) {
	t.Parallel()

	v, err := newEnvelopeValidator()
	require.NoError(t, err)

	tests := []struct {
		name        string
		body        string
		expectedErr error
	}{
		{name: "array data", body: `{"data": ["a"]}`},
		{name: "string data passes the envelope", body: `{"data": "x"}`},
		{name: "null data passes the envelope", body: `{"data": null}`},
		{name: "extra keys allowed", body: `{"data": [], "other": 1}`},
		{name: "missing data", body: `{}`, expectedErr: domain.ErrMissingData},
		{name: "top-level array", body: `[]`, expectedErr: domain.ErrMalformedRequest},
		{name: "top-level string", body: `"data"`, expectedErr: domain.ErrMalformedRequest},
		{name: "top-level null", body: `null`, expectedErr: domain.ErrMalformedRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate([]byte(tc.body))
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}
