package shared

import (
	"errors"
	"net/http"
)

// AppError carries the HTTP status and client-facing message for a failure.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Err        error
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

func NewAppError(statusCode int, err error, message string) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Err: err}
}

func NewBadRequestError(err error, message string) error {
	return NewAppError(http.StatusBadRequest, err, message)
}

func NewNotFoundError(err error, message string) error {
	return NewAppError(http.StatusNotFound, err, message)
}

func NewInternalError(err error, message string) error {
	return NewAppError(http.StatusInternalServerError, err, message)
}

// NewValidationError wraps field level validation details.
func NewValidationError(err error, details interface{}) error {
	return &AppError{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "Validation failed",
		Data:       details,
		Err:        err,
	}
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
