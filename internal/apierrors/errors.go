// Package apierrors defines the errors the API exposes to clients. Each error
// carries the HTTP status and the external message; internal causes stay
// wrapped and are only ever logged, never returned to the caller.
package apierrors

import (
	"fmt"
	"net/http"
)

// APIError is an error with an HTTP status and a client-safe message.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewErrEmailIsTaken reports a duplicate email at registration.
func NewErrEmailIsTaken(email string) *APIError {
	return &APIError{
		Status:  http.StatusConflict,
		Message: "email already registered",
		Err:     fmt.Errorf("email %q is taken", email),
	}
}

// NewErrInvalidCredentials reports a failed login. The message is identical
// for an unknown email and a wrong password to prevent email enumeration.
func NewErrInvalidCredentials() *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Message: "invalid credentials",
	}
}

// NewErrUnauthorized reports any bearer token failure: missing or malformed
// header, tampered or expired token, or a subject that no longer resolves to
// a user. All causes collapse into this one externally visible error.
func NewErrUnauthorized(cause error) *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Message: "could not validate credentials",
		Err:     cause,
	}
}

// NewErrNoteNotFound reports a note that is absent or owned by another user.
// The two cases are deliberately indistinguishable.
func NewErrNoteNotFound(id int64) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: "note not found",
		Err:     fmt.Errorf("note %d not found", id),
	}
}

// NewErrAttachmentNotFound reports a missing attachment on an owned note.
func NewErrAttachmentNotFound(noteID int64) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: "attachment not found",
		Err:     fmt.Errorf("note %d has no attachment", noteID),
	}
}

// NewErrBadRequest reports a malformed or incomplete request body.
func NewErrBadRequest(message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// NewErrAIUnavailable reports a failed upstream AI provider call.
func NewErrAIUnavailable(cause error) *APIError {
	return &APIError{
		Status:  http.StatusBadGateway,
		Message: "ai request failed",
		Err:     cause,
	}
}

// NewErrInternalServerError wraps an unexpected failure.
func NewErrInternalServerError(cause error) *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: "internal server error",
		Err:     cause,
	}
}
