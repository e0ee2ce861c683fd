package services

import (
	"errors"
	"net/http"
)

// ErrNotFound is the store-level sentinel for a missing document. Repositories
// wrap it; services translate it into a user-facing APIError.
var ErrNotFound = errors.New("not found")

// Error codes surfaced to clients.
const (
	CodeNotFound          = "not_found"
	CodeValidation        = "validation_error"
	CodeInvalidTransition = "invalid_transition"
)

// APIError is a user-visible failure with an HTTP-style status. Handlers send
// the message as-is; nothing internal leaks beyond it.
type APIError struct {
	Code    string `json:"code"`
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *APIError) Error() string { return e.Message }

func NotFound(msg string) *APIError {
	return &APIError{Code: CodeNotFound, Status: http.StatusNotFound, Message: msg}
}

func Invalid(msg string) *APIError {
	return &APIError{Code: CodeValidation, Status: http.StatusBadRequest, Message: msg}
}

func InvalidTransition(msg string) *APIError {
	return &APIError{Code: CodeInvalidTransition, Status: http.StatusBadRequest, Message: msg}
}

var ErrEmptyCart = Invalid("cart is empty, nothing to checkout")

// HTTPStatus maps an error to the response status handlers should use.
func HTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
