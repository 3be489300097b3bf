package rest

import (
	"time"

	"github.com/quickcart/payment-records/internal/domain"
)

// PaymentRecordResponse is the wire shape of a stored record. The card
// number is only ever present in its masked form.
type PaymentRecordResponse struct {
	InvoiceNumber    string    `json:"invoiceNumber"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	CardNumberMasked string    `json:"cardNumberMasked"`
	ExpiryDate       string    `json:"expiryDate"`
	Address          string    `json:"address"`
	RefundStatus     bool      `json:"refundStatus"`
	RefundReason     string    `json:"refundReason,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func ToPaymentRecordResponse(p *domain.PaymentRecord) PaymentRecordResponse {
	resp := PaymentRecordResponse{
		InvoiceNumber:    p.InvoiceNumber,
		Name:             p.Name,
		Email:            p.Email,
		CardNumberMasked: p.CardNumberMasked,
		ExpiryDate:       p.ExpiryDate,
		Address:          p.Address,
		RefundStatus:     p.RefundStatus,
		CreatedAt:        p.CreatedAt,
	}
	if p.RefundReason != nil {
		resp.RefundReason = *p.RefundReason
	}
	return resp
}

func ToPaymentRecordResponses(records []*domain.PaymentRecord) []PaymentRecordResponse {
	responses := make([]PaymentRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, ToPaymentRecordResponse(r))
	}
	return responses
}
