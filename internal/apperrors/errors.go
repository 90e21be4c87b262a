package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation would break a reference held by another resource.
var ErrConflict = errors.New("resource conflict")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries an HTTP-ish status code and a client-safe message alongside the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError returns an error matching ErrValidation.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, ErrValidation)
}

// NewNotFoundError returns an error matching ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewConflictError returns an error matching ErrConflict.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrConflict)
}

// NewDuplicateError returns an error matching ErrDuplicate, tagged with the offending field.
func NewDuplicateError(field, message string) *FieldError {
	return &FieldError{Field: field, AppError: *NewAppError(http.StatusUnprocessableEntity, message, ErrDuplicate)}
}

// FieldError is an AppError attributed to a single request field.
type FieldError struct {
	Field string
	AppError
}

func (e *FieldError) Unwrap() error {
	return &e.AppError
}

// NewFieldValidationError returns a validation error attributed to field.
func NewFieldValidationError(field, message string) *FieldError {
	return &FieldError{Field: field, AppError: *NewValidationError(message)}
}
