// Package application holds orchestration-level errors and the ports the
// lifecycle services depend on.
package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/quickcart/payment-records/internal/domain"
)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeInvalidCard      = "INVALID_CARD_NUMBER"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeTimeout          = "TIMEOUT"
)

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "an internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewStoreUnavailableError wraps a persistence failure. The request fails;
// the service never retries the store on its own.
func NewStoreUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeStoreUnavailable,
		Message:    "payment store is unavailable",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// ToHTTPStatus maps an error to the status code the REST layer should write.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	if _, ok := domain.IsValidationError(err); ok {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCardNumber):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	return http.StatusInternalServerError
}

// ToErrorCode maps an error to a stable code for API responses.
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if _, ok := domain.IsValidationError(err); ok {
		return ErrCodeValidation
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCardNumber):
		return ErrCodeInvalidCard
	case errors.Is(err, domain.ErrRecordNotFound):
		return ErrCodeNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}
