package domain

// DataNotArrayMessage is reported when the "data" value of a request is not an array.
const DataNotArrayMessage = "Input 'data' must be an array."

// ClassificationResult is the outcome of classifying one input array.
// It is built once by the classifier and never mutated afterwards.
type ClassificationResult struct {
	OddNumbers        []string `json:"odd_numbers"`
	EvenNumbers       []string `json:"even_numbers"`
	Alphabets         []string `json:"alphabets"`
	SpecialCharacters []string `json:"special_characters"`

	// Sum is the decimal representation of the sum of all numeric tokens.
	Sum string `json:"sum"`

	// ConcatString is the reversed, alternating-case join of the alphabetic pool.
	ConcatString string `json:"concat_string"`

	IsSuccess bool `json:"is_success"`

	// ErrorMessage is only set when IsSuccess is false.
	ErrorMessage string `json:"error,omitempty"`
}

// NewFailedResult returns the result reported when the input cannot be classified at all.
// Every category is empty, the sum is "0" and the concatenation is empty.
func NewFailedResult(message string) *ClassificationResult {
	return &ClassificationResult{
		OddNumbers:        []string{},
		EvenNumbers:       []string{},
		Alphabets:         []string{},
		SpecialCharacters: []string{},
		Sum:               "0",
		ConcatString:      "",
		IsSuccess:         false,
		ErrorMessage:      message,
	}
}

// NumericCount returns how many numeric tokens were classified.
func (r *ClassificationResult) NumericCount() int {
	return len(r.OddNumbers) + len(r.EvenNumbers)
}
