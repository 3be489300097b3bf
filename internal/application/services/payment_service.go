// Package services orchestrates the payment record lifecycle: submission,
// refund transition, deletion, and queries.
package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator"

	"github.com/quickcart/payment-records/internal/application"
	"github.com/quickcart/payment-records/internal/domain"
)

// maxInvoiceAttempts bounds regeneration when an insert hits the store's
// unique constraint. Collisions on an 8-char code are rare enough that two
// in a row already indicate something is wrong.
const maxInvoiceAttempts = 5

type PaymentService struct {
	repo     application.PaymentRecordRepository
	validate *validator.Validate
}

func NewPaymentService(repo application.PaymentRecordRepository) *PaymentService {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &PaymentService{
		repo:     repo,
		validate: v,
	}
}

// SubmitPayment validates the checkout details, masks the card number,
// assigns an invoice number and persists the record. The raw card number
// and CVV are discarded before the store is touched.
func (s *PaymentService) SubmitPayment(ctx context.Context, cmd SubmitPaymentCommand) (*SubmitPaymentResult, error) {
	if err := s.validateSubmission(cmd); err != nil {
		return nil, err
	}

	maskedCard, err := domain.MaskCardNumber(cmd.CardNumber)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateCVV(cmd.CVV); err != nil {
		return nil, err
	}

	for range maxInvoiceAttempts {
		record, err := domain.NewPaymentRecord(
			domain.NewInvoiceNumber(),
			cmd.Name,
			cmd.Email,
			maskedCard,
			cmd.ExpiryDate,
			cmd.Address,
			time.Now(),
		)
		if err != nil {
			return nil, err
		}

		err = s.repo.Insert(ctx, record)
		if errors.Is(err, domain.ErrDuplicateInvoice) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return &SubmitPaymentResult{
			InvoiceNumber: record.InvoiceNumber,
			Name:          record.Name,
			MaskedCard:    record.CardNumberMasked,
		}, nil
	}

	return nil, application.NewInternalError(errors.New("could not allocate a unique invoice number"))
}

// Refund transitions the record to refunded with the caller's reason.
// Refunding an already refunded record is an idempotent no-op returning the
// stored record unchanged.
func (s *PaymentService) Refund(ctx context.Context, cmd RefundCommand) (*domain.PaymentRecord, error) {
	if strings.TrimSpace(cmd.Reason) == "" {
		return nil, domain.NewValidationError("refund reason is required", "refundReason")
	}

	return s.repo.UpdateRefund(ctx, cmd.InvoiceNumber, cmd.Reason)
}

// DeleteByInvoice permanently removes the record. Irreversible; no audit
// trail is kept.
func (s *PaymentService) DeleteByInvoice(ctx context.Context, invoiceNumber string) error {
	return s.repo.Delete(ctx, invoiceNumber)
}

func (s *PaymentService) validateSubmission(cmd SubmitPaymentCommand) error {
	err := s.validate.Struct(cmd)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return application.NewInternalError(err)
	}

	var missing []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		if fe.Field() == "email" {
			return domain.NewValidationError("email must be a valid address", "email")
		}
		return domain.NewValidationError("invalid value", fe.Field())
	}

	if len(missing) > 0 {
		return domain.NewMissingFieldsError(missing)
	}
	return nil
}
