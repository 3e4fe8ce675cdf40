package apierror

import (
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation     Kind = "VALIDATION"
	KindNotFound       Kind = "NOT_FOUND"
	KindAuthentication Kind = "AUTHENTICATION"
	KindAuthorization  Kind = "AUTHORIZATION"
	KindConflict       Kind = "CONFLICT"
	KindInternal       Kind = "INTERNAL"
)

// APIError is an expected failure that carries the HTTP status it maps to.
// The message is shown to clients as-is.
type APIError struct {
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func New(kind Kind, message string, status int) *APIError {
	return &APIError{Kind: kind, Message: message, HTTPStatus: status}
}

func Validation(message string) *APIError {
	return New(KindValidation, message, http.StatusBadRequest)
}

func NotFound(message string) *APIError {
	return New(KindNotFound, message, http.StatusNotFound)
}

func Authentication(message string) *APIError {
	return New(KindAuthentication, message, http.StatusUnauthorized)
}

func Authorization(message string) *APIError {
	return New(KindAuthorization, message, http.StatusForbidden)
}

// Conflict reports a uniqueness clash. Clients of this API have always seen
// 400 for duplicates, so the status stays 400 rather than 409.
func Conflict(message string) *APIError {
	return New(KindConflict, message, http.StatusBadRequest)
}

func Internal(message string) *APIError {
	return New(KindInternal, message, http.StatusInternalServerError)
}
