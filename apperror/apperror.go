// Package apperror defines the error taxonomy shared by the server and the client.
package apperror

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

type AuthReason string

const (
	InvalidCredentials AuthReason = "InvalidCredentials"
	SessionExpired     AuthReason = "SessionExpired"
	Unauthenticated    AuthReason = "Unauthenticated"
	Forbidden          AuthReason = "Forbidden"
	InactiveAccount    AuthReason = "InactiveAccount"
)

type ValidationReason string

const (
	InvalidField    ValidationReason = "InvalidField"
	InvalidAssignee ValidationReason = "InvalidAssignee"
)

type ConflictReason string

const (
	AlreadyAssigned   ConflictReason = "AlreadyAssigned"
	NotAssigned       ConflictReason = "NotAssigned"
	InvalidTransition ConflictReason = "InvalidTransition"
	Duplicate         ConflictReason = "Duplicate"
	InUse             ConflictReason = "InUse"
)

type AuthError struct {
	Reason  AuthReason
	Message string
}

func (e *AuthError) Error() string { return e.Message }

type ValidationError struct {
	Reason  ValidationReason
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

type ConflictError struct {
	Reason  ConflictReason
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

type NotFoundError struct {
	Resource string
	Message  string
}

func (e *NotFoundError) Error() string { return e.Message }

// NetworkError means the backend could not be reached at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("backend unreachable, check the server address and your connection: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// InternalError carries a server-side failure that is not part of the taxonomy.
type InternalError struct {
	Status  int
	Message string
}

func (e *InternalError) Error() string { return e.Message }

func NewAuth(reason AuthReason, msg string) error {
	return &AuthError{Reason: reason, Message: msg}
}

func NewValidation(reason ValidationReason, msg string) error {
	return &ValidationError{Reason: reason, Message: msg}
}

func NewFieldValidation(msg string, fields map[string]string) error {
	return &ValidationError{Reason: InvalidField, Message: msg, Fields: fields}
}

func NewConflict(reason ConflictReason, msg string) error {
	return &ConflictError{Reason: reason, Message: msg}
}

func NewNotFound(resource string) error {
	return &NotFoundError{Resource: resource, Message: resource + " not found"}
}

func IsAuth(err error, reason AuthReason) bool {
	var e *AuthError
	return errors.As(err, &e) && (reason == "" || e.Reason == reason)
}

func IsValidation(err error, reason ValidationReason) bool {
	var e *ValidationError
	return errors.As(err, &e) && (reason == "" || e.Reason == reason)
}

func IsConflict(err error, reason ConflictReason) bool {
	var e *ConflictError
	return errors.As(err, &e) && (reason == "" || e.Reason == reason)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsNetwork(err error) bool {
	var e *NetworkError
	return errors.As(err, &e)
}

// HTTPStatus maps an error to the status code the server responds with.
func HTTPStatus(err error) int {
	var (
		authErr       *AuthError
		validationErr *ValidationError
		conflictErr   *ConflictError
		notFoundErr   *NotFoundError
		internalErr   *InternalError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &authErr):
		if authErr.Reason == Forbidden || authErr.Reason == InactiveAccount {
			return http.StatusForbidden
		}
		return http.StatusUnauthorized
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &internalErr) && internalErr.Status != 0:
		return internalErr.Status
	default:
		return http.StatusInternalServerError
	}
}

// ReasonOf returns the typed reason carried by err, or "" when it has none.
func ReasonOf(err error) string {
	var (
		authErr       *AuthError
		validationErr *ValidationError
		conflictErr   *ConflictError
	)
	switch {
	case errors.As(err, &authErr):
		return string(authErr.Reason)
	case errors.As(err, &validationErr):
		return string(validationErr.Reason)
	case errors.As(err, &conflictErr):
		return string(conflictErr.Reason)
	}
	return ""
}

func authReason(reason string, fallback AuthReason) AuthReason {
	switch r := AuthReason(reason); r {
	case InvalidCredentials, SessionExpired, Unauthenticated, Forbidden, InactiveAccount:
		return r
	}
	return fallback
}

func validationReason(reason string) ValidationReason {
	if r := ValidationReason(reason); r == InvalidAssignee {
		return r
	}
	return InvalidField
}

func conflictReason(reason string) ConflictReason {
	switch r := ConflictReason(reason); r {
	case AlreadyAssigned, NotAssigned, InvalidTransition, Duplicate, InUse:
		return r
	}
	return ""
}

// FromStatus rebuilds a typed error from an HTTP error response. The server
// message is kept verbatim. Unknown reasons fall back to the status default.
func FromStatus(status int, reason, message string, fields map[string]string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	switch {
	case status == http.StatusUnauthorized:
		return &AuthError{Reason: authReason(reason, Unauthenticated), Message: message}
	case status == http.StatusForbidden:
		return &AuthError{Reason: authReason(reason, Forbidden), Message: message}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity || status == http.StatusRequestEntityTooLarge:
		return &ValidationError{Reason: validationReason(reason), Message: message, Fields: fields}
	case status == http.StatusConflict:
		return &ConflictError{Reason: conflictReason(reason), Message: message}
	case status == http.StatusNotFound:
		return &NotFoundError{Message: message}
	default:
		return &InternalError{Status: status, Message: message}
	}
}
