package handlers

import (
	"net/http"

	"github.com/quickcart/payment-records/internal/interfaces/rest"
)

// HandleGetAllPayments returns every stored record, unfiltered, in
// submission order.
func (h *Handlers) HandleGetAllPayments(w http.ResponseWriter, r *http.Request) {
	records, err := h.queryService.ListAll(r.Context())
	if err != nil {
		h.logFailure(r, "list payments failed", err)
		rest.WriteError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, rest.ToPaymentRecordResponses(records))
}

// HandleGetByInvoice returns the record behind one invoice number.
func (h *Handlers) HandleGetByInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceNumber := r.PathValue("invoiceNumber")

	record, err := h.queryService.GetByInvoice(r.Context(), invoiceNumber)
	if err != nil {
		h.logFailure(r, "get payment failed", err)
		rest.WriteError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, rest.ToPaymentRecordResponse(record))
}

// HandleGetByEmail returns the records submitted under one email address.
func (h *Handlers) HandleGetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	records, err := h.queryService.ListByEmail(r.Context(), email)
	if err != nil {
		h.logFailure(r, "list payments by email failed", err)
		rest.WriteError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, rest.ToPaymentRecordResponses(records))
}

// HandleSearch matches records against a free-text query over name, invoice
// number, card last four, email and address.
func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	records, err := h.queryService.Search(r.Context(), query)
	if err != nil {
		h.logFailure(r, "search payments failed", err)
		rest.WriteError(w, err)
		return
	}

	rest.RespondJSON(w, http.StatusOK, rest.ToPaymentRecordResponses(records))
}
