package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/bfhl-api/internal/api/shared"
	"github.com/phrazzld/bfhl-api/internal/config"
	"github.com/phrazzld/bfhl-api/internal/domain"
	"github.com/phrazzld/bfhl-api/internal/platform/logger"
	"github.com/phrazzld/bfhl-api/internal/service"
)

// BFHLHandler handles the /bfhl classification endpoint and the status routes
type BFHLHandler struct {
	service      service.ClassificationService
	identity     Identity
	envelope     *envelopeValidator
	maxBodyBytes int64
	logger       *slog.Logger
}

// NewBFHLHandler creates a new BFHLHandler.
// The identity values are taken from configuration and attached to every response.
func NewBFHLHandler(
	classificationService service.ClassificationService,
	identity config.IdentityConfig,
	maxBodyBytes int64,
	logger *slog.Logger,
) (*BFHLHandler, error) {
	if classificationService == nil {
		return nil, errors.New("classification service cannot be nil")
	}
	if maxBodyBytes <= 0 {
		return nil, fmt.Errorf("max body bytes must be positive, got %d", maxBodyBytes)
	}
	if logger == nil {
		logger = slog.Default()
	}

	envelope, err := newEnvelopeValidator()
	if err != nil {
		return nil, err
	}

	return &BFHLHandler{
		service:      classificationService,
		identity:     NewIdentity(identity),
		envelope:     envelope,
		maxBodyBytes: maxBodyBytes,
		logger:       logger.With("component", "bfhl_handler"),
	}, nil
}

// Classify handles POST /bfhl requests
func (h *BFHLHandler) Classify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Parse request body
	body, err := shared.ReadJSONBody(w, r, h.maxBodyBytes)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondWithError(w, r, fmt.Errorf("%w: %w", domain.ErrMalformedRequest, err),
				shared.WithElevatedLogLevel())
			return
		}
		h.respondWithError(w, r, fmt.Errorf("%w: %w", domain.ErrMalformedRequest, err))
		return
	}

	// Validate the envelope before decoding
	if err := h.envelope.Validate(body); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	var req BFHLRequest
	if err := shared.DecodeJSON(body, &req); err != nil {
		h.respondWithError(w, r, fmt.Errorf("%w: %w", domain.ErrMalformedRequest, err))
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	result, err := h.service.Process(r.Context(), req.Data)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	response := resultToResponse(h.identity, result)

	if !result.IsSuccess {
		// Bad request due to invalid input type; the full payload is still reported
		shared.LogAPIError(r, http.StatusBadRequest, result.ErrorMessage, domain.ErrDataNotArray)
		shared.RespondWithJSON(w, r, http.StatusBadRequest, response)
		return
	}

	log.Debug("classification succeeded", "sum", result.Sum)
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// OperationCode handles GET /bfhl requests
func (h *BFHLHandler) OperationCode(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, OperationCodeResponse{OperationCode: OperationCode})
}

// Status handles GET / requests
func (h *BFHLHandler) Status(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{Message: StatusMessage})
}

// respondWithError maps err to a status and writes a BFHLErrorResponse
func (h *BFHLHandler) respondWithError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	opts ...shared.ResponseOption,
) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	shared.LogAPIError(r, status, message, err, opts...)
	shared.RespondWithJSON(w, r, status, BFHLErrorResponse{
		IsSuccess: false,
		Identity:  h.identity,
		Error:     message,
		TraceID:   shared.GetTraceID(r.Context()),
	})
}
