package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcart/payment-records/internal/application/services"
	"github.com/quickcart/payment-records/internal/domain"
	"github.com/quickcart/payment-records/internal/infrastructure/persistence/memory"
)

func submitFor(t *testing.T, service *services.PaymentService, name, email string) *services.SubmitPaymentResult {
	t.Helper()

	cmd := validSubmission()
	cmd.Name = name
	cmd.Email = email

	result, err := service.SubmitPayment(context.Background(), cmd)
	require.NoError(t, err)
	return result
}

func TestListAll_PreservesSubmissionOrder(t *testing.T) {
	repo := memory.NewPaymentRecordRepository()
	service := services.NewPaymentService(repo)
	queries := services.NewQueryService(repo)

	first := submitFor(t, service, "Jane Doe", "jane@x.com")
	second := submitFor(t, service, "John Smith", "john@x.com")
	third := submitFor(t, service, "Ann Lee", "ann@x.com")

	records, err := queries.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, first.InvoiceNumber, records[0].InvoiceNumber)
	assert.Equal(t, second.InvoiceNumber, records[1].InvoiceNumber)
	assert.Equal(t, third.InvoiceNumber, records[2].InvoiceNumber)
}

func TestGetByInvoice_NotFound(t *testing.T) {
	queries := services.NewQueryService(memory.NewPaymentRecordRepository())

	_, err := queries.GetByInvoice(context.Background(), "AB12CD34")

	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestListByEmail(t *testing.T) {
	repo := memory.NewPaymentRecordRepository()
	service := services.NewPaymentService(repo)
	queries := services.NewQueryService(repo)

	first := submitFor(t, service, "Jane Doe", "jane@x.com")
	submitFor(t, service, "John Smith", "john@x.com")
	second := submitFor(t, service, "Jane Doe", "jane@x.com")

	records, err := queries.ListByEmail(context.Background(), "jane@x.com")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.InvoiceNumber, records[0].InvoiceNumber)
	assert.Equal(t, second.InvoiceNumber, records[1].InvoiceNumber)
}

func TestListByEmail_IsCaseSensitive(t *testing.T) {
	repo := memory.NewPaymentRecordRepository()
	service := services.NewPaymentService(repo)
	queries := services.NewQueryService(repo)

	submitFor(t, service, "Jane Doe", "jane@x.com")

	records, err := queries.ListByEmail(context.Background(), "Jane@x.com")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSearch(t *testing.T) {
	repo := memory.NewPaymentRecordRepository()
	service := services.NewPaymentService(repo)
	queries := services.NewQueryService(repo)

	jane := submitFor(t, service, "Jane Doe", "jane@x.com")
	submitFor(t, service, "John Smith", "john@x.com")

	t.Run("matches name case insensitively", func(t *testing.T) {
		records, err := queries.Search(context.Background(), "jane")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, jane.InvoiceNumber, records[0].InvoiceNumber)
	})

	t.Run("matches invoice number", func(t *testing.T) {
		records, err := queries.Search(context.Background(), jane.InvoiceNumber)

		require.NoError(t, err)
		require.Len(t, records, 1)
	})

	t.Run("matches card last four", func(t *testing.T) {
		records, err := queries.Search(context.Background(), "1111")

		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("matches address", func(t *testing.T) {
		records, err := queries.Search(context.Background(), "main st")

		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		records, err := queries.Search(context.Background(), "zzz")

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("rejects empty query", func(t *testing.T) {
		_, err := queries.Search(context.Background(), "   ")

		require.Error(t, err)
		_, ok := domain.IsValidationError(err)
		assert.True(t, ok)
	})
}
