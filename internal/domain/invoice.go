package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var invoicePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// NewInvoiceNumber produces a short human-readable invoice code from a
// random UUID prefix. Collisions are possible; the store's unique
// constraint is the authoritative guard and callers retry on duplicate.
func NewInvoiceNumber() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

// IsValidInvoiceNumber reports whether s is an 8-character uppercase
// alphanumeric invoice code.
func IsValidInvoiceNumber(s string) bool {
	return invoicePattern.MatchString(s)
}
