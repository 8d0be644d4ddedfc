package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = validator.New()

// ErrInvalidJSON is returned when a request body is empty, too large or not valid JSON.
var ErrInvalidJSON = errors.New("request body is not valid JSON")

// ReadJSONBody reads at most maxBytes of the request body and checks that it
// holds exactly one well-formed JSON value. The raw bytes are returned so the
// caller can validate them against a schema before decoding.
func ReadJSONBody(w http.ResponseWriter, r *http.Request, maxBytes int64) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if len(bytes.TrimSpace(body)) == 0 || !json.Valid(body) {
		return nil, ErrInvalidJSON
	}

	return body, nil
}

// DecodeJSON decodes a JSON document into the given struct.
func DecodeJSON(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// ValidateRequest validates the struct tags of v with the validator package,
// then runs v's own Validate method when it has one.
func ValidateRequest(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return err
	}

	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}
	return nil
}
