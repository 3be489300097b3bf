package application

import (
	"context"

	"github.com/quickcart/payment-records/internal/domain"
)

// PaymentRecordRepository is the durable collection of payment records,
// keyed by invoice number.
//
// Implementations must enforce invoice uniqueness atomically on Insert
// (returning domain.ErrDuplicateInvoice), return domain.ErrRecordNotFound
// for absent keys, and keep FindAll in insertion order.
type PaymentRecordRepository interface {
	Insert(ctx context.Context, record *domain.PaymentRecord) error
	FindByInvoice(ctx context.Context, invoiceNumber string) (*domain.PaymentRecord, error)
	FindAll(ctx context.Context) ([]*domain.PaymentRecord, error)
	FindByEmail(ctx context.Context, email string) ([]*domain.PaymentRecord, error)

	// UpdateRefund marks the record refunded with the given reason. Applied
	// to an already refunded record it is a no-op returning the stored
	// record, original reason intact.
	UpdateRefund(ctx context.Context, invoiceNumber, reason string) (*domain.PaymentRecord, error)

	Delete(ctx context.Context, invoiceNumber string) error
}
