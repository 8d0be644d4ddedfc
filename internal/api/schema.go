package api

import (
	"fmt"

	"github.com/phrazzld/bfhl-api/internal/domain"
	"github.com/xeipuuv/gojsonschema"
)

// requestSchema describes the envelope of a POST /bfhl body. The type of
// "data" is deliberately unconstrained: a non-array value is reported by the
// classifier, not rejected here.
const requestSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["data"]
}`

// envelopeValidator checks request bodies against requestSchema
type envelopeValidator struct {
	schema *gojsonschema.Schema
}

// newEnvelopeValidator compiles requestSchema
func newEnvelopeValidator() (*envelopeValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(requestSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile request schema: %w", err)
	}
	return &envelopeValidator{schema: schema}, nil
}

// Validate returns nil for a conforming body, an error wrapping
// domain.ErrMissingData when only "data" is absent, and an error wrapping
// domain.ErrMalformedRequest otherwise.
func (v *envelopeValidator) Validate(body []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedRequest, err)
	}
	if result.Valid() {
		return nil
	}

	for _, resultErr := range result.Errors() {
		if resultErr.Type() != "required" {
			return fmt.Errorf("%w: %s", domain.ErrMalformedRequest, resultErr.String())
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrMissingData, result.Errors()[0].String())
}
