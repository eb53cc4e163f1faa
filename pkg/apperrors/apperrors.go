package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure kinds the API can raise. Every layer
// raises one of these deliberately; nothing is inferred from a generic catch.
type Kind string

const (
	KindValidation         Kind = "validation_error"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindUnauthorized       Kind = "unauthorized"
	KindForbidden          Kind = "forbidden"
	KindNotFound           Kind = "not_found"
	KindUniqueConstraint   Kind = "unique_constraint"
	KindForeignKey         Kind = "foreign_key_constraint"
	KindRateLimited        Kind = "rate_limited"
	KindInternal           Kind = "internal_error"
)

// Issue is a single field-level validation violation.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// AppError carries a failure kind plus optional detail for the response body.
// The wrapped cause is logged server-side and never reaches the client.
type AppError struct {
	Kind    Kind
	Message string
	Issues  []Issue
	Meta    map[string]string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.cause.Error())
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Status maps the failure kind to its HTTP status code.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindInvalidCredentials, KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUniqueConstraint, KindForeignKey:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func Validation(issues []Issue) *AppError {
	return &AppError{Kind: KindValidation, Issues: issues}
}

func ValidationMessage(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func InvalidCredentials() *AppError {
	return &AppError{Kind: KindInvalidCredentials}
}

func Unauthorized(cause error) *AppError {
	return &AppError{Kind: KindUnauthorized, cause: cause}
}

func Forbidden() *AppError {
	return &AppError{Kind: KindForbidden}
}

func NotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, cause: fmt.Errorf("%s not found", resource)}
}

func UniqueConstraint(constraint string, cause error) *AppError {
	return &AppError{
		Kind:  KindUniqueConstraint,
		Meta:  map[string]string{"constraint": constraint},
		cause: cause,
	}
}

func ForeignKey(constraint string, cause error) *AppError {
	return &AppError{
		Kind:  KindForeignKey,
		Meta:  map[string]string{"constraint": constraint},
		cause: cause,
	}
}

func RateLimited() *AppError {
	return &AppError{Kind: KindRateLimited}
}

func Internal(cause error) *AppError {
	return &AppError{Kind: KindInternal, cause: cause}
}

// As extracts an *AppError from err, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}
