package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcart/payment-records/internal/application/services"
	"github.com/quickcart/payment-records/internal/infrastructure/persistence/memory"
	"github.com/quickcart/payment-records/internal/interfaces/rest/handlers"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Fields  []string `json:"fields"`
	} `json:"error"`
}

type recordPayload struct {
	InvoiceNumber    string `json:"invoiceNumber"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	CardNumberMasked string `json:"cardNumberMasked"`
	ExpiryDate       string `json:"expiryDate"`
	Address          string `json:"address"`
	RefundStatus     bool   `json:"refundStatus"`
	RefundReason     string `json:"refundReason"`
}

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := memory.NewPaymentRecordRepository()
	paymentService := services.NewPaymentService(repo)
	queryService := services.NewQueryService(repo)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mux := http.NewServeMux()
	handlers.NewHandlers(paymentService, queryService, logger).RegisterRoutes(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func validPaymentBody() map[string]string {
	return map[string]string{
		"name":       "Jane Doe",
		"email":      "jane@x.com",
		"cardNumber": "4111 1111 1111 1111",
		"expiryDate": "12/29",
		"cvv":        "123",
		"address":    "1 Main St",
	}
}

func makePayment(t *testing.T, server *httptest.Server, body map[string]string) string {
	t.Helper()

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/payments/makePayment", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)

	var result struct {
		InvoiceNumber string `json:"invoiceNumber"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	return result.InvoiceNumber
}

func TestMakePayment(t *testing.T) {
	server := setupServer(t)

	t.Run("returns invoice and masked card", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPost, server.URL+"/api/payments/makePayment", validPaymentBody())

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.True(t, env.Success)

		var result struct {
			InvoiceNumber string `json:"invoiceNumber"`
			Name          string `json:"name"`
			MaskedCard    string `json:"maskedCard"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Len(t, result.InvoiceNumber, 8)
		assert.Equal(t, "Jane Doe", result.Name)
		assert.Equal(t, "**** **** **** 1111", result.MaskedCard)
	})

	t.Run("lists missing fields", func(t *testing.T) {
		body := validPaymentBody()
		delete(body, "email")
		delete(body, "address")

		resp, env := doJSON(t, http.MethodPost, server.URL+"/api/payments/makePayment", body)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.ElementsMatch(t, []string{"email", "address"}, env.Error.Fields)
	})

	t.Run("rejects short card number", func(t *testing.T) {
		body := validPaymentBody()
		body["cardNumber"] = "411"

		resp, env := doJSON(t, http.MethodPost, server.URL+"/api/payments/makePayment", body)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_CARD_NUMBER", env.Error.Code)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, server.URL+"/api/payments/makePayment", bytes.NewReader([]byte("{not json")))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetAllPayments(t *testing.T) {
	server := setupServer(t)

	first := makePayment(t, server, validPaymentBody())
	second := makePayment(t, server, validPaymentBody())

	resp, env := doJSON(t, http.MethodGet, server.URL+"/api/payments/getAllPayments", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)

	var records []recordPayload
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, first, records[0].InvoiceNumber)
	assert.Equal(t, second, records[1].InvoiceNumber)
	assert.Equal(t, "**** **** **** 1111", records[0].CardNumberMasked)
}

func TestGetByInvoice(t *testing.T) {
	server := setupServer(t)

	invoice := makePayment(t, server, validPaymentBody())

	t.Run("found", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, server.URL+"/api/payments/refund/"+invoice, nil)

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var record recordPayload
		require.NoError(t, json.Unmarshal(env.Data, &record))
		assert.Equal(t, invoice, record.InvoiceNumber)
		assert.False(t, record.RefundStatus)
	})

	t.Run("unknown invoice", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, server.URL+"/api/payments/refund/ZZ99ZZ99", nil)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestRefund(t *testing.T) {
	server := setupServer(t)

	invoice := makePayment(t, server, validPaymentBody())

	t.Run("marks refunded", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPut, server.URL+"/api/payments/refund/"+invoice,
			map[string]string{"refundReason": "damaged goods"})

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var record recordPayload
		require.NoError(t, json.Unmarshal(env.Data, &record))
		assert.True(t, record.RefundStatus)
		assert.Equal(t, "damaged goods", record.RefundReason)
	})

	t.Run("repeat refund keeps original reason", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPut, server.URL+"/api/payments/refund/"+invoice,
			map[string]string{"refundReason": "changed my mind"})

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var record recordPayload
		require.NoError(t, json.Unmarshal(env.Data, &record))
		assert.Equal(t, "damaged goods", record.RefundReason)
	})

	t.Run("empty reason", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPut, server.URL+"/api/payments/refund/"+invoice,
			map[string]string{"refundReason": "  "})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("unknown invoice", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPut, server.URL+"/api/payments/refund/ZZ99ZZ99",
			map[string]string{"refundReason": "not needed"})

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetByEmail(t *testing.T) {
	server := setupServer(t)

	invoice := makePayment(t, server, validPaymentBody())

	other := validPaymentBody()
	other["email"] = "someone@else.com"
	makePayment(t, server, other)

	resp, env := doJSON(t, http.MethodGet, server.URL+"/api/payments/byEmail/jane@x.com", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var records []recordPayload
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, invoice, records[0].InvoiceNumber)
}

func TestSearch(t *testing.T) {
	server := setupServer(t)

	invoice := makePayment(t, server, validPaymentBody())

	t.Run("matches by name", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, server.URL+"/api/payments/search?q=jane", nil)

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var records []recordPayload
		require.NoError(t, json.Unmarshal(env.Data, &records))
		require.Len(t, records, 1)
		assert.Equal(t, invoice, records[0].InvoiceNumber)
	})

	t.Run("no match returns empty list", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, server.URL+"/api/payments/search?q=zzz", nil)

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var records []recordPayload
		require.NoError(t, json.Unmarshal(env.Data, &records))
		assert.Empty(t, records)
	})

	t.Run("missing query", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, server.URL+"/api/payments/search", nil)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}

func TestDelete(t *testing.T) {
	server := setupServer(t)

	invoice := makePayment(t, server, validPaymentBody())

	resp, env := doJSON(t, http.MethodDelete, server.URL+"/api/payments/"+invoice, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)

	var result struct {
		InvoiceNumber string `json:"invoiceNumber"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, invoice, result.InvoiceNumber)

	getResp, _ := doJSON(t, http.MethodGet, server.URL+"/api/payments/refund/"+invoice, nil)
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)

	delResp, _ := doJSON(t, http.MethodDelete, server.URL+"/api/payments/"+invoice, nil)
	assert.Equal(t, http.StatusNotFound, delResp.StatusCode)
}
