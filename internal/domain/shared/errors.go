package shared

import "fmt"

// DomainError represents a business rule violation raised by the domain
// or application layer. The Code is stable and mapped to an HTTP status
// by the interface layer.
type DomainError struct {
	Code    string
	Message string
}

func (e DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) DomainError {
	return DomainError{Code: code, Message: message}
}

// Common error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeInvalidState  = "INVALID_STATE"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeEmptyCart     = "EMPTY_CART"
	ErrCodeOrderRequired = "ORDER_REQUIRED"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// Convenience constructors for the common cases.

func NewNotFoundError(resource, id string) DomainError {
	return DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

func NewAlreadyExistsError(resource, id string) DomainError {
	return DomainError{
		Code:    ErrCodeAlreadyExists,
		Message: fmt.Sprintf("%s already exists: %s", resource, id),
	}
}

func NewInvalidInputError(message string) DomainError {
	return DomainError{Code: ErrCodeInvalidInput, Message: message}
}

func NewInvalidStateError(message string) DomainError {
	return DomainError{Code: ErrCodeInvalidState, Message: message}
}
