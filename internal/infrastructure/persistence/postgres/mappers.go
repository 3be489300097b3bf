package postgres

import (
	"github.com/quickcart/payment-records/internal/domain"
)

// toDomainModel: maps db model to domain entity
func toDomainModel(m PaymentRecordModel) *domain.PaymentRecord {
	return domain.Reconstitute(
		m.InvoiceNumber,
		m.Name,
		m.Email,
		m.CardNumberMasked,
		m.ExpiryDate,
		m.Address,
		m.RefundStatus,
		m.RefundReason,
		m.CreatedAt,
	)
}

// toDBModel: maps domain entity to db model
func toDBModel(p *domain.PaymentRecord) *PaymentRecordModel {
	return &PaymentRecordModel{
		InvoiceNumber:    p.InvoiceNumber,
		Name:             p.Name,
		Email:            p.Email,
		CardNumberMasked: p.CardNumberMasked,
		ExpiryDate:       p.ExpiryDate,
		Address:          p.Address,
		RefundStatus:     p.RefundStatus,
		RefundReason:     p.RefundReason,
		CreatedAt:        p.CreatedAt,
	}
}
