package dto

import (
	"net/http"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
var errorCodeHTTPStatus = map[string]int{
	shared.ErrCodeNotFound:      http.StatusNotFound,
	shared.ErrCodeAlreadyExists: http.StatusConflict,
	shared.ErrCodeInvalidInput:  http.StatusBadRequest,
	shared.ErrCodeInvalidState:  http.StatusUnprocessableEntity,
	shared.ErrCodeUnauthorized:  http.StatusUnauthorized,
	shared.ErrCodeForbidden:     http.StatusForbidden,
	shared.ErrCodeEmptyCart:     http.StatusBadRequest,
	shared.ErrCodeOrderRequired: http.StatusForbidden,
	shared.ErrCodeInternal:      http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for a domain error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
