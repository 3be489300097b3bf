package domain

import (
	"regexp"
	"strings"
)

// maskPrefix replaces every digit except the last four. The masked form is
// the only card data that may be persisted or logged.
const maskPrefix = "**** **** **** "

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{13,19}$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3}$`)
)

// MaskCardNumber strips whitespace from the card number and reduces it to
// its display-safe masked form. The discarded digits are never returned to
// the caller in any form.
func MaskCardNumber(cardNumber string) (string, error) {
	cleaned := strings.ReplaceAll(cardNumber, " ", "")
	if !cardNumberPattern.MatchString(cleaned) {
		return "", ErrInvalidCardNumber
	}
	return maskPrefix + cleaned[len(cleaned)-4:], nil
}

// ValidateCVV checks the CVV format. The value is used transiently during
// submission and is never stored.
func ValidateCVV(cvv string) error {
	if !cvvPattern.MatchString(cvv) {
		return NewValidationError("cvv must be exactly 3 digits", "cvv")
	}
	return nil
}
