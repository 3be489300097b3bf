// Package rest carries the response envelope and error mapping shared by
// the HTTP handlers and middleware.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/quickcart/payment-records/internal/application"
	"github.com/quickcart/payment-records/internal/domain"
)

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: true,
		Data:    data,
	})
}

// WriteError maps application and domain errors to HTTP responses.
func WriteError(w http.ResponseWriter, err error) {
	apiErr := &APIError{
		Code:    application.ToErrorCode(err),
		Message: err.Error(),
	}
	if vErr, ok := domain.IsValidationError(err); ok {
		apiErr.Fields = vErr.Fields
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(application.ToHTTPStatus(err))

	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error:   apiErr,
	})
}
