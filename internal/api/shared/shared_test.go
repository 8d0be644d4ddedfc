package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/bfhl-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "trace ID should be a UUID")

	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)
}

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "operation code",
			status:       http.StatusOK,
			data:         map[string]int{"operation_code": 1},
			expectedBody: `{"operation_code":1}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		status        int
		err           error
		opts          []ResponseOption
		expectedLevel string
	}{
		{name: "client error", status: http.StatusBadRequest, expectedLevel: "DEBUG"},
		{
			name:          "elevated client error",
			status:        http.StatusBadRequest,
			opts:          []ResponseOption{WithElevatedLogLevel()},
			expectedLevel: "WARN",
		},
		{name: "rate limited", status: http.StatusTooManyRequests, expectedLevel: "WARN"},
		{
			name:          "server error",
			status:        http.StatusInternalServerError,
			err:           errors.New("read /srv/app/data/file.json: boom"),
			expectedLevel: "ERROR",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, buf := logger.NewLogCaptureContext(t)
			ctx = SetTraceID(ctx)
			req := httptest.NewRequest(http.MethodPost, "/bfhl", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tc.status, "something went wrong", tc.err, tc.opts...)

			assert.Equal(t, tc.status, w.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "something went wrong", body.Error)
			assert.Equal(t, GetTraceID(ctx), body.TraceID)

			logger.AssertLogField(t, buf, "level", tc.expectedLevel)
			logger.AssertLogField(t, buf, "status_code", float64(tc.status))
			if tc.err != nil {
				assert.NotContains(t, buf.String(), "/srv/app", "paths must be redacted from logs")
				assert.NotContains(t, w.Body.String(), "boom", "raw errors must not reach the client")
			}
		})
	}
}

func TestReadJSONBody(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		body        string
		maxBytes    int64
		expectError bool
	}{
		{name: "object", body: `{"data":["a"]}`, maxBytes: 1024},
		{name: "bare null is valid JSON", body: `null`, maxBytes: 1024},
		{name: "empty body", body: ``, maxBytes: 1024, expectError: true},
		{name: "whitespace only", body: "  \n", maxBytes: 1024, expectError: true},
		{name: "truncated", body: `{"data":[`, maxBytes: 1024, expectError: true},
		{name: "trailing garbage", body: `{"data":[]} x`, maxBytes: 1024, expectError: true},
		{name: "too large", body: `{"data":["` + strings.Repeat("a", 64) + `"]}`, maxBytes: 16, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/bfhl", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			body, err := ReadJSONBody(w, req, tc.maxBytes)
			if tc.expectError {
				assert.ErrorIs(t, err, ErrInvalidJSON)
				assert.Nil(t, body)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.body, string(body))
		})
	}
}

type sampleRequest struct {
	Data any `json:"data" validate:"required"`
}

func TestDecodeAndValidate(t *testing.T) {
	t.Parallel()

	var req sampleRequest
	require.NoError(t, DecodeJSON([]byte(`{"data":[1,"a"]}`), &req))
	assert.NoError(t, ValidateRequest(req))

	var missing sampleRequest
	require.NoError(t, DecodeJSON([]byte(`{"data":null}`), &missing))
	assert.Error(t, ValidateRequest(missing))

	var wrong sampleRequest
	assert.ErrorIs(t, DecodeJSON([]byte(`[1,2]`), &wrong), ErrInvalidJSON)
}

var errCustomRule = errors.New("custom rule failed")

type hookedRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r hookedRequest) Validate() error {
	if r.Name == "forbidden" {
		return errCustomRule
	}
	return nil
}

func TestValidateRequest_TagsThenHook(t *testing.T) {
	t.Parallel()

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, ValidateRequest(hookedRequest{}), &verrs, "struct tags are checked first")
	assert.ErrorIs(t, ValidateRequest(hookedRequest{Name: "forbidden"}), errCustomRule)
	assert.NoError(t, ValidateRequest(hookedRequest{Name: "ok"}))
}
