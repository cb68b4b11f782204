package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardError_IsMatchesByCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{"not found matches sentinel", NewNotFoundError("12345678000195", "BadRequestError"), ErrNotFound, true},
		{"invalid format matches sentinel", NewInvalidFormatError("abc"), ErrInvalidFormat, true},
		{"transport does not match not found", NewTransportFailureError("x", fmt.Errorf("boom")), ErrNotFound, false},
		{"wrapped error still matches", fmt.Errorf("lookup: %w", NewNotFoundError("x", "y")), ErrNotFound, true},
		{"plain error does not match", fmt.Errorf("boom"), ErrTransportFailure, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stderrors.Is(tt.err, tt.target))
		})
	}
}

func TestTransportFailure_UnwrapsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewTransportFailureError("12345678000195", cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, err.Retryable)
	assert.Contains(t, err.Details, "connection refused")
}

func TestNormalize(t *testing.T) {
	assert.Nil(t, Normalize(nil))

	stdErr := NewNotFoundError("x", "y")
	assert.Same(t, stdErr, Normalize(stdErr))

	plain := fmt.Errorf("unexpected")
	normalized := Normalize(plain)
	require.NotNil(t, normalized)
	assert.Equal(t, ErrCodeInternal, normalized.Code)
	assert.True(t, stderrors.Is(normalized, plain))
}

func TestConvertToBPMNError(t *testing.T) {
	stdErr := NewInvalidFormatError("123")
	bpmnErr := ConvertToBPMNError(stdErr)

	assert.Equal(t, "CNPJ_INVALID_FORMAT", bpmnErr.Code)
	assert.False(t, bpmnErr.Retryable)

	vars := bpmnErr.ToErrorVariables()
	assert.Equal(t, "CNPJ_INVALID_FORMAT", vars["errorCode"])
	assert.Equal(t, "CNPJ_INVALID_FORMAT", vars["originalErrorCode"])
	assert.NotEmpty(t, vars["timestamp"])
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "LOOKUP", GetErrorCategory(ErrCodeNotFound))
	assert.Equal(t, "REGISTRY", GetErrorCategory(ErrCodeTransportFailure))
	assert.Equal(t, "SESSION", GetErrorCategory(ErrCodeSessionNotFound))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInputParseFailed))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(ErrCodeInvalidFormat))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(ErrCodeNotFound))
	assert.Equal(t, http.StatusBadGateway, ToHTTPStatus(ErrCodeTransportFailure))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(ErrCodeSessionNotFound))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(ErrCodeInternal))
}
