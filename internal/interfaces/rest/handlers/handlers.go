// Package handlers exposes the payment record lifecycle over the checkout
// REST surface.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/quickcart/payment-records/internal/application/services"
)

type Handlers struct {
	paymentService *services.PaymentService
	queryService   *services.QueryService
	logger         *slog.Logger
}

func NewHandlers(
	paymentService *services.PaymentService,
	queryService *services.QueryService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		paymentService: paymentService,
		queryService:   queryService,
		logger:         logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/payments/makePayment", h.HandleMakePayment)
	mux.HandleFunc("GET /api/payments/getAllPayments", h.HandleGetAllPayments)
	mux.HandleFunc("GET /api/payments/search", h.HandleSearch)
	mux.HandleFunc("GET /api/payments/refund/{invoiceNumber}", h.HandleGetByInvoice)
	mux.HandleFunc("PUT /api/payments/refund/{invoiceNumber}", h.HandleRefund)
	mux.HandleFunc("GET /api/payments/byEmail/{email}", h.HandleGetByEmail)
	mux.HandleFunc("DELETE /api/payments/{invoiceNumber}", h.HandleDelete)
}
