// Package errors provides the coded error type shared by the lookup service,
// the HTTP shell and the BPMN job worker.
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidFormat     ErrorCode = "CNPJ_INVALID_FORMAT"
	ErrCodeNotFound          ErrorCode = "CNPJ_NOT_FOUND"
	ErrCodeTransportFailure  ErrorCode = "REGISTRY_TRANSPORT_FAILURE"
	ErrCodeInputParseFailed  ErrorCode = "INPUT_PARSE_FAILED"
	ErrCodeSessionNotFound   ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeInvalidAction     ErrorCode = "INVALID_ACTION"
	ErrCodeSessionStoreError ErrorCode = "SESSION_STORE_ERROR"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// Is matches any StandardError carrying the same code, so the sentinels
// below work with errors.Is.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrInvalidFormat    = &StandardError{Code: ErrCodeInvalidFormat}
	ErrNotFound         = &StandardError{Code: ErrCodeNotFound}
	ErrTransportFailure = &StandardError{Code: ErrCodeTransportFailure}
	ErrSessionNotFound  = &StandardError{Code: ErrCodeSessionNotFound}
	ErrInvalidAction    = &StandardError{Code: ErrCodeInvalidAction}
)

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

func NewInvalidFormatError(input string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidFormat,
		Message:   "Identifier does not match the CNPJ format",
		Details:   fmt.Sprintf("input: %q", input),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewNotFoundError(identifier, marker string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   "No company registered under this CNPJ",
		Details:   fmt.Sprintf("identifier: %s, marker: %s", identifier, marker),
		Retryable: false,
		Metadata:  map[string]interface{}{"identifier": identifier},
		Timestamp: time.Now().UTC(),
	}
}

func NewTransportFailureError(identifier string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTransportFailure,
		Message:   "Registry request failed",
		Details:   fmt.Sprintf("identifier: %s, error: %s", identifier, err.Error()),
		Retryable: true,
		Metadata:  map[string]interface{}{"identifier": identifier},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewInputParseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputParseFailed,
		Message:   "Input could not be parsed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewSessionNotFoundError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "Session not found",
		Details:   fmt.Sprintf("sessionId: %s", sessionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInvalidActionError(kind string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidAction,
		Message:   "Unsupported action",
		Details:   fmt.Sprintf("kind: %q", kind),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewSessionStoreError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreError,
		Message:   "Session store unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// Normalize turns any error into a StandardError, keeping the original as
// the cause.
func Normalize(err error) *StandardError {
	if err == nil {
		return nil
	}
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
// BPMN codes are the internal codes.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	return &BPMNError{
		Code:      string(stdErr.Code),
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.HasPrefix(codeStr, "CNPJ_"):
		return "LOOKUP"
	case strings.HasPrefix(codeStr, "REGISTRY_"):
		return "REGISTRY"
	case strings.HasPrefix(codeStr, "SESSION_"):
		return "SESSION"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "PARSE"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}

// ToHTTPStatus maps an error code onto the HTTP status the API answers with.
func ToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidFormat, ErrCodeInputParseFailed, ErrCodeInvalidAction:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeSessionNotFound:
		return http.StatusNotFound
	case ErrCodeTransportFailure:
		return http.StatusBadGateway
	case ErrCodeSessionStoreError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
