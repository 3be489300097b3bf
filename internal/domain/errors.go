package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Store-level sentinels. Repositories return these regardless of backend so
// callers can branch with errors.Is.
var (
	ErrRecordNotFound    = errors.New("payment record not found")
	ErrDuplicateInvoice  = errors.New("invoice number already exists")
	ErrInvalidCardNumber = errors.New("card number must be 13 to 19 digits")
)

// ValidationError reports rejected caller input, with the offending fields
// so the API can surface a field-level message.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// NewMissingFieldsError lists required submission fields that were absent.
func NewMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{Message: "missing required fields", Fields: fields}
}

// IsValidationError checks for a ValidationError anywhere in the chain.
func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	ok := errors.As(err, &vErr)
	return vErr, ok
}
