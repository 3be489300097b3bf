package handlers

import (
	"net/http"

	"github.com/quickcart/payment-records/internal/interfaces/rest"
)

type DeleteResponse struct {
	InvoiceNumber string `json:"invoiceNumber"`
}

// HandleDelete permanently removes a payment record.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	invoiceNumber := r.PathValue("invoiceNumber")

	if err := h.paymentService.DeleteByInvoice(r.Context(), invoiceNumber); err != nil {
		h.logFailure(r, "delete payment failed", err)
		rest.WriteError(w, err)
		return
	}

	h.logger.Info("payment deleted", "invoice_number", invoiceNumber)

	rest.RespondJSON(w, http.StatusOK, DeleteResponse{InvoiceNumber: invoiceNumber})
}
