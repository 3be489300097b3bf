package services

import (
	"context"
	"strings"

	"github.com/quickcart/payment-records/internal/application"
	"github.com/quickcart/payment-records/internal/domain"
)

type QueryService struct {
	repo application.PaymentRecordRepository
}

func NewQueryService(repo application.PaymentRecordRepository) *QueryService {
	return &QueryService{repo: repo}
}

// ListAll returns every record in insertion order. Masking happened at
// write time, so no read-time transformation is applied.
func (s *QueryService) ListAll(ctx context.Context) ([]*domain.PaymentRecord, error) {
	return s.repo.FindAll(ctx)
}

func (s *QueryService) GetByInvoice(ctx context.Context, invoiceNumber string) (*domain.PaymentRecord, error) {
	return s.repo.FindByInvoice(ctx, invoiceNumber)
}

// ListByEmail returns records whose stored email matches exactly,
// case-sensitive, in insertion order.
func (s *QueryService) ListByEmail(ctx context.Context, email string) ([]*domain.PaymentRecord, error) {
	return s.repo.FindByEmail(ctx, email)
}

// Search is the single query capability over records: case-insensitive
// substring match against name, invoice number, card last four, email and
// address.
func (s *QueryService) Search(ctx context.Context, query string) ([]*domain.PaymentRecord, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, domain.NewValidationError("search query is required", "q")
	}

	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.PaymentRecord, 0, len(records))
	for _, r := range records {
		if recordMatches(r, q) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func recordMatches(r *domain.PaymentRecord, q string) bool {
	lastFour := r.CardNumberMasked
	if len(lastFour) > 4 {
		lastFour = lastFour[len(lastFour)-4:]
	}

	for _, field := range []string{r.Name, r.InvoiceNumber, lastFour, r.Email, r.Address} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
