package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal server error")
)

// FieldMessage is one itemized validation (or validation-shaped) failure,
// rendered to clients as {"msg": ...}.
type FieldMessage struct {
	Msg string `json:"msg"`
}

// AppError carries a sentinel base for errors.Is checks, the client-facing
// message(s), and the internal detail that only ever reaches the log.
type AppError struct {
	BaseError error
	Message   string
	Messages  []FieldMessage
	Details   string
	Err       error

	// Status overrides the default sentinel mapping; several not-found
	// conditions surface as 400 rather than 404.
	Status int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

// HTTPStatus resolves the response status: the explicit override wins,
// otherwise the sentinel decides.
func (e *AppError) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch {
	case errors.Is(e.BaseError, ErrValidation), errors.Is(e.BaseError, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(e.BaseError, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(e.BaseError, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// NewValidation itemizes one message per failed constraint.
func NewValidation(msgs ...string) *AppError {
	fields := make([]FieldMessage, 0, len(msgs))
	for _, m := range msgs {
		fields = append(fields, FieldMessage{Msg: m})
	}
	return &AppError{
		BaseError: ErrValidation,
		Message:   "Invalid input",
		Messages:  fields,
		Status:    http.StatusBadRequest,
	}
}

// NewDuplicateEmail reports a registration against an email that already has
// an identity. Rendered in the itemized shape, as login/register errors are.
func NewDuplicateEmail(email string) *AppError {
	return &AppError{
		BaseError: ErrConflict,
		Message:   "User already exists",
		Messages:  []FieldMessage{{Msg: "User already exists"}},
		Details:   fmt.Sprintf("email '%s' is already registered", email),
		Status:    http.StatusBadRequest,
	}
}

// NewInvalidCredentials is deliberately identical for an unknown email and a
// wrong password, so the response never confirms an account exists.
func NewInvalidCredentials(details string) *AppError {
	return &AppError{
		BaseError: ErrUnauthorized,
		Message:   "Invalid credentials",
		Messages:  []FieldMessage{{Msg: "Invalid credentials"}},
		Details:   details,
		Status:    http.StatusBadRequest,
	}
}

func NewNoProfile(details string) *AppError {
	return &AppError{
		BaseError: ErrNotFound,
		Message:   "There is no profile for this user",
		Details:   details,
		Status:    http.StatusBadRequest,
	}
}

// NewEntryNotFound covers experience/education removal by an id that is not
// in the owner's list.
func NewEntryNotFound(details string) *AppError {
	return &AppError{
		BaseError: ErrNotFound,
		Message:   "Invalid request",
		Details:   details,
		Status:    http.StatusBadRequest,
	}
}

func NewNoRepos(username string) *AppError {
	return &AppError{
		BaseError: ErrNotFound,
		Message:   "No Github Profile found",
		Details:   fmt.Sprintf("github returned a non-200 status for user '%s'", username),
		Status:    http.StatusNotFound,
	}
}

func NewUnauthorized(msg, details string) *AppError {
	return &AppError{
		BaseError: ErrUnauthorized,
		Message:   msg,
		Details:   details,
	}
}

func NewInternal(details string, err error) *AppError {
	return &AppError{
		BaseError: ErrInternal,
		Message:   "Server Error",
		Details:   details,
		Err:       err,
	}
}
