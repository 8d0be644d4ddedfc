package classify

import (
	"github.com/phrazzld/bfhl-api/internal/domain"
)

// Service defines the interface for token classification
type Service interface {
	// Classify partitions the tokens of data into categories and computes
	// the sum and concatenation string. Non-array input yields a result with
	// IsSuccess set to false rather than an error.
	Classify(data any) *domain.ClassificationResult

	// Params returns the policies the service was built with
	Params() Params
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new classifier service with default policies
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new classifier service with custom policies.
// A nil params value falls back to the defaults.
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultService{
		params: params,
	}
}

// Classify implements the Service interface
func (s *defaultService) Classify(data any) *domain.ClassificationResult {
	return classifyTokens(data, s.params)
}

// Params implements the Service interface
func (s *defaultService) Params() Params {
	return *s.params
}
