package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/quickcart/payment-records/internal/application/services"
	"github.com/quickcart/payment-records/internal/domain"
	"github.com/quickcart/payment-records/internal/interfaces/rest"
)

type RefundRequest struct {
	RefundReason string `json:"refundReason"`
}

// HandleRefund marks a payment refunded with the caller's reason. The
// transition is one-way; refunding an already refunded record returns it
// unchanged.
func (h *Handlers) HandleRefund(w http.ResponseWriter, r *http.Request) {
	invoiceNumber := r.PathValue("invoiceNumber")

	var req RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, domain.NewValidationError("request body must be valid JSON"))
		return
	}

	record, err := h.paymentService.Refund(r.Context(), services.RefundCommand{
		InvoiceNumber: invoiceNumber,
		Reason:        req.RefundReason,
	})
	if err != nil {
		h.logFailure(r, "refund failed", err)
		rest.WriteError(w, err)
		return
	}

	h.logger.Info("payment refunded", "invoice_number", invoiceNumber)

	rest.RespondJSON(w, http.StatusOK, rest.ToPaymentRecordResponse(record))
}
