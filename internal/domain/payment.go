// Package domain encodes the payment record entity and its attributes
package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// PaymentRecord is the persisted outcome of a checkout submission.
// Only the refund transition mutates it after creation.
type PaymentRecord struct {
	InvoiceNumber    string
	Name             string
	Email            string
	CardNumberMasked string
	ExpiryDate       string // "MM/YY"
	Address          string
	RefundStatus     bool
	RefundReason     *string
	CreatedAt        time.Time
}

var namePattern = regexp.MustCompile(`^[A-Za-z ]+$`)

// NewPaymentRecord constructs an unrefunded record. Card masking and
// invoice generation happen before this point; the raw card number and
// CVV must never reach a record.
func NewPaymentRecord(invoiceNumber, name, email, cardNumberMasked, expiryDate, address string, createdAt time.Time) (*PaymentRecord, error) {
	if !IsValidInvoiceNumber(invoiceNumber) {
		return nil, NewValidationError("invalid invoice number", "invoiceNumber")
	}
	if !namePattern.MatchString(name) {
		return nil, NewValidationError("name must contain letters and spaces only", "name")
	}
	if err := ValidateExpiryDate(expiryDate, createdAt); err != nil {
		return nil, err
	}

	return &PaymentRecord{
		InvoiceNumber:    invoiceNumber,
		Name:             name,
		Email:            email,
		CardNumberMasked: cardNumberMasked,
		ExpiryDate:       expiryDate,
		Address:          address,
		RefundStatus:     false,
		CreatedAt:        createdAt,
	}, nil
}

// MarkRefunded performs the one-way refund transition. It reports whether
// the transition happened: a record that is already refunded is left
// untouched, keeping the original reason.
func (p *PaymentRecord) MarkRefunded(reason string) bool {
	if p.RefundStatus {
		return false
	}
	p.RefundStatus = true
	p.RefundReason = &reason
	return true
}

// ValidateExpiryDate checks the "MM/YY" format and that the card is still
// valid at the given time. A card expiring this month is accepted through
// the end of the month.
func ValidateExpiryDate(expiry string, now time.Time) error {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return NewValidationError("expiry date must be in MM/YY format", "expiryDate")
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return NewValidationError("expiry month must be between 01 and 12", "expiryDate")
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return NewValidationError("expiry date must be in MM/YY format", "expiryDate")
	}
	year += 2000

	// first instant of the month after expiry
	expiresAt := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	if !now.Before(expiresAt) {
		return NewValidationError("card has expired", "expiryDate")
	}

	return nil
}

// Reconstitute loads a record from the store without re-running creation
// validation.
func Reconstitute(
	invoiceNumber, name, email, cardNumberMasked, expiryDate, address string,
	refundStatus bool,
	refundReason *string,
	createdAt time.Time,
) *PaymentRecord {
	return &PaymentRecord{
		InvoiceNumber:    invoiceNumber,
		Name:             name,
		Email:            email,
		CardNumberMasked: cardNumberMasked,
		ExpiryDate:       expiryDate,
		Address:          address,
		RefundStatus:     refundStatus,
		RefundReason:     refundReason,
		CreatedAt:        createdAt,
	}
}
