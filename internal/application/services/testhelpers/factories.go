package testhelpers

import (
	"github.com/quickcart/payment-records/internal/application/services"
)

// DefaultSubmitCommand returns a valid checkout submission for testing.
func DefaultSubmitCommand() services.SubmitPaymentCommand {
	return services.SubmitPaymentCommand{
		Name:       "Jane Doe",
		Email:      "jane@x.com",
		CardNumber: "4111111111111111",
		ExpiryDate: "12/29",
		CVV:        "123",
		Address:    "1 Main St",
	}
}
