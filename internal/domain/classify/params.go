package classify

import (
	"fmt"

	"github.com/phrazzld/bfhl-api/internal/domain"
)

// Params defines the configurable policies of the classifier
type Params struct {
	// SpecialPolicy decides whether mixed tokens are decomposed per character
	SpecialPolicy domain.SpecialPolicy

	// PoolCase decides the case of characters collected for concatenation
	PoolCase domain.PoolCase
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		SpecialPolicy: domain.SpecialPolicyCharacters,
		PoolCase:      domain.PoolCaseUpper,
	}
}

// NewParams creates a Params instance from raw configuration values.
// Returns an error wrapping domain.ErrInvalidPolicy if either value is unknown.
func NewParams(specialPolicy, poolCase string) (*Params, error) {
	sp, err := domain.ParseSpecialPolicy(specialPolicy)
	if err != nil {
		return nil, fmt.Errorf("failed to create classifier params: %w", err)
	}

	pc, err := domain.ParsePoolCase(poolCase)
	if err != nil {
		return nil, fmt.Errorf("failed to create classifier params: %w", err)
	}

	return &Params{SpecialPolicy: sp, PoolCase: pc}, nil
}
