package api

import (
	"github.com/phrazzld/bfhl-api/internal/config"
	"github.com/phrazzld/bfhl-api/internal/domain"
)

// OperationCode is the fixed value reported by GET /bfhl
const OperationCode = 1

// StatusMessage is the informational message reported by GET /
const StatusMessage = "BFHL API is running. Send a POST request to /bfhl."

// BFHLRequest represents the request body of POST /bfhl
type BFHLRequest struct {
	// Data is left undecoded beyond generic JSON so that non-array values
	// reach the classifier and are reported as such.
	Data any `json:"data"`
}

// Validate implements the interface checked by shared.ValidateRequest.
// A null "data" value counts as missing.
func (r BFHLRequest) Validate() error {
	if r.Data == nil {
		return domain.ErrMissingData
	}
	return nil
}

// Identity holds the fixed identity fields echoed in every /bfhl response
type Identity struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	RollNumber string `json:"roll_number"`
}

// NewIdentity builds the response identity from deployment configuration
func NewIdentity(cfg config.IdentityConfig) Identity {
	return Identity{
		UserID:     cfg.UserID,
		Email:      cfg.Email,
		RollNumber: cfg.RollNumber,
	}
}

// BFHLResponse represents a classification response, successful or not
type BFHLResponse struct {
	IsSuccess bool `json:"is_success"`
	Identity
	OddNumbers        []string `json:"odd_numbers"`
	EvenNumbers       []string `json:"even_numbers"`
	Alphabets         []string `json:"alphabets"`
	SpecialCharacters []string `json:"special_characters"`
	Sum               string   `json:"sum"`
	ConcatString      string   `json:"concat_string"`
	Error             string   `json:"error,omitempty"`
}

// BFHLErrorResponse represents a request that never reached the classifier
type BFHLErrorResponse struct {
	IsSuccess bool `json:"is_success"`
	Identity
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// OperationCodeResponse is the body of GET /bfhl
type OperationCodeResponse struct {
	OperationCode int `json:"operation_code"`
}

// StatusResponse is the body of GET /
type StatusResponse struct {
	Message string `json:"message"`
}

// resultToResponse converts a domain.ClassificationResult to a BFHLResponse
func resultToResponse(identity Identity, result *domain.ClassificationResult) BFHLResponse {
	return BFHLResponse{
		IsSuccess:         result.IsSuccess,
		Identity:          identity,
		OddNumbers:        nonNil(result.OddNumbers),
		EvenNumbers:       nonNil(result.EvenNumbers),
		Alphabets:         nonNil(result.Alphabets),
		SpecialCharacters: nonNil(result.SpecialCharacters),
		Sum:               result.Sum,
		ConcatString:      result.ConcatString,
		Error:             result.ErrorMessage,
	}
}

// nonNil makes sure empty categories serialize as [] rather than null
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
