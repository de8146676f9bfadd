package dto

import (
	"net/http"
	"strings"
)

// General error codes used by handlers when no domain code applies
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeValidation   = "VALIDATION_FAILED"
)

// statusByCode maps domain error codes to HTTP status codes. Codes not
// listed here fall through to the prefix rules in GetHTTPStatus.
var statusByCode = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeConflict:     http.StatusConflict,
	ErrCodeValidation:   http.StatusBadRequest,

	"USER_NOT_FOUND": http.StatusNotFound,

	// authentication
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"ACCOUNT_LOCKED":      http.StatusForbidden,
	"ACCOUNT_DEACTIVATED": http.StatusForbidden,
	"ACCOUNT_INACTIVE":    http.StatusForbidden,
	"INVALID_PASSWORD":    http.StatusBadRequest,

	// conflicts with existing state
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"ROOM_UNAVAILABLE":     http.StatusConflict,
	"ROOM_OCCUPIED":        http.StatusConflict,
	"GUEST_IN_USE":         http.StatusConflict,
	"DEPARTMENT_IN_USE":    http.StatusConflict,

	// business rule violations on valid requests
	"ALREADY_PAID":      http.StatusUnprocessableEntity,
	"CAPACITY_EXCEEDED": http.StatusUnprocessableEntity,
	"INVALID_STATE":     http.StatusUnprocessableEntity,
	"ITEM_UNAVAILABLE":  http.StatusUnprocessableEntity,
	"EMPTY_ORDER":       http.StatusUnprocessableEntity,

	"DB_ERROR":            http.StatusInternalServerError,
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus maps a domain error code to an HTTP status code
func GetHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	switch {
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasPrefix(code, "ALREADY_"):
		return http.StatusConflict
	case strings.HasPrefix(code, "INVALID_"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
