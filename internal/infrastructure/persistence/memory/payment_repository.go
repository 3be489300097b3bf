// Package memory provides an in-memory PaymentRecordRepository with the
// same contract as the postgres implementation. Used by unit tests.
package memory

import (
	"context"
	"sync"

	"github.com/quickcart/payment-records/internal/domain"
)

type PaymentRecordRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.PaymentRecord
	order   []string
}

func NewPaymentRecordRepository() *PaymentRecordRepository {
	return &PaymentRecordRepository{
		records: make(map[string]*domain.PaymentRecord),
	}
}

func (r *PaymentRecordRepository) Insert(_ context.Context, record *domain.PaymentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.InvoiceNumber]; ok {
		return domain.ErrDuplicateInvoice
	}

	stored := *record
	r.records[record.InvoiceNumber] = &stored
	r.order = append(r.order, record.InvoiceNumber)
	return nil
}

func (r *PaymentRecordRepository) FindByInvoice(_ context.Context, invoiceNumber string) (*domain.PaymentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[invoiceNumber]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	copied := *record
	return &copied, nil
}

func (r *PaymentRecordRepository) FindAll(_ context.Context) ([]*domain.PaymentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*domain.PaymentRecord, 0, len(r.order))
	for _, invoice := range r.order {
		copied := *r.records[invoice]
		results = append(results, &copied)
	}
	return results, nil
}

func (r *PaymentRecordRepository) FindByEmail(_ context.Context, email string) ([]*domain.PaymentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*domain.PaymentRecord, 0)
	for _, invoice := range r.order {
		if record := r.records[invoice]; record.Email == email {
			copied := *record
			results = append(results, &copied)
		}
	}
	return results, nil
}

func (r *PaymentRecordRepository) UpdateRefund(_ context.Context, invoiceNumber, reason string) (*domain.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[invoiceNumber]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	// Idempotent: a second refund leaves the original reason in place.
	record.MarkRefunded(reason)

	copied := *record
	return &copied, nil
}

func (r *PaymentRecordRepository) Delete(_ context.Context, invoiceNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[invoiceNumber]; !ok {
		return domain.ErrRecordNotFound
	}

	delete(r.records, invoiceNumber)
	for i, invoice := range r.order {
		if invoice == invoiceNumber {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
