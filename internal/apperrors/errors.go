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

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized request")

// ErrForbidden indicates an authenticated caller acting on a resource it does not own.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates the refresh token is expired, rotated or revoked.
var ErrRefreshTokenExpired = errors.New("refresh token is expired or used")

// ErrInternal indicates an unexpected failure in a dependency.
var ErrInternal = errors.New("internal server error")

// AppError carries an HTTP status and a client-facing message alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Validation wraps ErrValidation with a client-facing message.
func Validation(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NotFound wraps ErrNotFound with a client-facing message.
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// Duplicate wraps ErrDuplicate with a client-facing message.
func Duplicate(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}

// Unauthorized wraps ErrUnauthorized with a client-facing message.
func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

// Forbidden wraps ErrForbidden with a client-facing message.
func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

// Internal wraps an unexpected dependency failure. The cause is kept for logs only.
func Internal(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, errors.Join(ErrInternal, err))
}

// HTTPStatus maps an error to the status code reported to clients.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrRefreshTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the client-facing message for err. Internal causes are never exposed.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	switch HTTPStatus(err) {
	case http.StatusInternalServerError:
		return "Something went wrong"
	default:
		return err.Error()
	}
}
