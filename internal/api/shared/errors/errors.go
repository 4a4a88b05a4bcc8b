package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-token-gate/internal/domain"
)

// ErrorCode is the machine readable code of an API error body
type ErrorCode string

const (
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeConflict         ErrorCode = "conflict"

	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeUnavailable   ErrorCode = "upstream_unavailable"
)

var statusByCode = map[ErrorCode]int{
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeValidationFailed: http.StatusUnprocessableEntity,
	ErrCodeUnauthorized:     http.StatusUnauthorized,
	ErrCodeForbidden:        http.StatusForbidden,
	ErrCodeConflict:         http.StatusConflict,
	ErrCodeUnavailable:      http.StatusServiceUnavailable,
}

// domainCodes maps domain sentinels to the code clients see, first match wins
var domainCodes = []struct {
	sentinel error
	code     ErrorCode
}{
	{domain.ErrNotFound, ErrCodeNotFound},
	{domain.ErrUnauthorized, ErrCodeUnauthorized},
	{domain.ErrInvalidInput, ErrCodeValidationFailed},
	{domain.ErrInvalidSetting, ErrCodeValidationFailed},
	{domain.ErrInvalidAmount, ErrCodeValidationFailed},
	{domain.ErrWalletAlreadyLinked, ErrCodeConflict},
	{domain.ErrRunInProgress, ErrCodeConflict},
	{domain.ErrChainRead, ErrCodeUnavailable},
}

// APIError is the JSON error body of every failed request
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// StatusCode returns the HTTP status of the code, 500 for server side codes
func (e *APIError) StatusCode() int {
	if status, ok := statusByCode[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FromError maps an error to an APIError. Unknown errors become internal
// errors carrying only the message so storage details never reach clients.
func FromError(err error, message string) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	for _, m := range domainCodes {
		if !errors.Is(err, m.sentinel) {
			continue
		}
		if m.code == ErrCodeValidationFailed {
			return NewValidationError(err.Error())
		}
		return newError(m.code, message, []string{err.Error()})
	}
	return NewInternalError(message)
}

func newError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{Code: code, Message: message, Details: strings.Join(details, ", ")}
}

func NewBadRequestError(message string, details ...string) *APIError {
	return newError(ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(ErrCodeNotFound, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newError(ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newError(ErrCodeUnauthorized, message, details)
}

func NewConflictError(message string, details ...string) *APIError {
	return newError(ErrCodeConflict, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(ErrCodeInternalError, message, details)
}

func NewDatabaseError(message string, details ...string) *APIError {
	return newError(ErrCodeDatabaseError, message, details)
}
