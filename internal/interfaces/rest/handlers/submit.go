package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/quickcart/payment-records/internal/application"
	"github.com/quickcart/payment-records/internal/application/services"
	"github.com/quickcart/payment-records/internal/domain"
	"github.com/quickcart/payment-records/internal/interfaces/rest"
)

type MakePaymentRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	Address    string `json:"address"`
}

// HandleMakePayment records a checkout payment and responds with the
// invoice number and masked card. The raw card number and CVV never appear
// in the response or the logs.
func (h *Handlers) HandleMakePayment(w http.ResponseWriter, r *http.Request) {
	var req MakePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, domain.NewValidationError("request body must be valid JSON"))
		return
	}

	cmd := services.SubmitPaymentCommand{
		Name:       req.Name,
		Email:      req.Email,
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		CVV:        req.CVV,
		Address:    req.Address,
	}

	result, err := h.paymentService.SubmitPayment(r.Context(), cmd)
	if err != nil {
		h.logFailure(r, "payment submission failed", err)
		rest.WriteError(w, err)
		return
	}

	h.logger.Info("payment recorded",
		"invoice_number", result.InvoiceNumber,
		"masked_card", result.MaskedCard,
	)

	rest.RespondJSON(w, http.StatusOK, result)
}

func (h *Handlers) logFailure(r *http.Request, msg string, err error) {
	if application.ToHTTPStatus(err) >= http.StatusInternalServerError {
		h.logger.Error(msg, "method", r.Method, "path", r.URL.Path, "error", err)
		return
	}
	h.logger.Debug(msg, "method", r.Method, "path", r.URL.Path, "error", err)
}
