package postgres

import (
	"time"
)

// PaymentRecordModel mirrors the payments table row.
type PaymentRecordModel struct {
	InvoiceNumber    string
	Name             string
	Email            string
	CardNumberMasked string
	ExpiryDate       string
	Address          string
	RefundStatus     bool
	RefundReason     *string
	CreatedAt        time.Time
}
