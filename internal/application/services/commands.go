package services

// SubmitPaymentCommand carries the raw checkout details. CardNumber and CVV
// are transient: they are validated, the card number is masked, and neither
// survives past SubmitPayment.
type SubmitPaymentCommand struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	CardNumber string `json:"cardNumber" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
	Address    string `json:"address" validate:"required"`
}

// SubmitPaymentResult is the safe projection returned to the caller. It
// never includes the raw card number or CVV.
type SubmitPaymentResult struct {
	InvoiceNumber string `json:"invoiceNumber"`
	Name          string `json:"name"`
	MaskedCard    string `json:"maskedCard"`
}

type RefundCommand struct {
	InvoiceNumber string
	Reason        string
}
