package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bfhl-api/internal/domain"
	"github.com/phrazzld/bfhl-api/internal/platform/logger"
)

// Classifier is the domain operation the service delegates to.
// classify.Service satisfies it.
type Classifier interface {
	Classify(data any) *domain.ClassificationResult
}

// ClassificationService runs the classifier on behalf of the transport layer
type ClassificationService interface {
	// Process classifies the decoded "data" value of a request.
	//
	// Non-array input is not an error: it yields a result with IsSuccess set
	// to false. An error is returned only when classification itself failed
	// unexpectedly, and it always wraps domain.ErrUnexpectedFailure.
	Process(ctx context.Context, data any) (*domain.ClassificationResult, error)
}

// ClassificationServiceError wraps errors from the classification service with context.
type ClassificationServiceError struct {
	// Operation is the operation that failed (e.g., "classify")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ClassificationServiceError.
func (e *ClassificationServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("classification service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("classification service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ClassificationServiceError) Unwrap() error {
	return e.Err
}

// classificationServiceImpl implements the ClassificationService interface
type classificationServiceImpl struct {
	classifier Classifier
	logger     *slog.Logger
}

// NewClassificationService creates a new ClassificationService.
// It returns an error if the classifier is nil.
func NewClassificationService(classifier Classifier, logger *slog.Logger) (ClassificationService, error) {
	if classifier == nil {
		return nil, &ClassificationServiceError{
			Operation: "create_service",
			Message:   "classifier cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &classificationServiceImpl{
		classifier: classifier,
		logger:     logger.With("component", "classification_service"),
	}, nil
}

// Process implements ClassificationService
func (s *classificationServiceImpl) Process(
	ctx context.Context,
	data any,
) (result *domain.ClassificationResult, err error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = &ClassificationServiceError{
				Operation: "classify",
				Message:   "classifier panicked",
				Err:       fmt.Errorf("%w: %v", domain.ErrUnexpectedFailure, rec),
			}
			log.Error("classification panicked", "panic", fmt.Sprint(rec))
		}
	}()

	result = s.classifier.Classify(data)
	if result == nil {
		return nil, &ClassificationServiceError{
			Operation: "classify",
			Message:   "classifier returned no result",
			Err:       domain.ErrUnexpectedFailure,
		}
	}

	if !result.IsSuccess {
		log.Debug("input rejected by classifier",
			"reason", result.ErrorMessage,
			"data_type", fmt.Sprintf("%T", data))
		return result, nil
	}

	log.Debug("input classified",
		"numeric_count", result.NumericCount(),
		"odd_count", len(result.OddNumbers),
		"even_count", len(result.EvenNumbers),
		"alphabet_count", len(result.Alphabets),
		"special_count", len(result.SpecialCharacters),
		"sum", result.Sum)

	return result, nil
}
