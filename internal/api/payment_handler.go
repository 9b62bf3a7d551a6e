package api

import (
	"net/http"

	"github.com/sports-academy/server/internal/api/shared"
	"github.com/sports-academy/server/internal/service/payment"
)

// PaymentHandler serves the payment gateway routes.
type PaymentHandler struct {
	payments payment.Service
}

// NewPaymentHandler creates a PaymentHandler with the given payment service.
func NewPaymentHandler(payments payment.Service) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateIntentRequest carries the decimal price to charge.
type CreateIntentRequest struct {
	Price float64 `json:"price"`
}

// CreateIntentResponse carries the gateway client secret the frontend uses
// to complete the charge.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req CreateIntentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	clientSecret, err := h.payments.CreateIntent(r.Context(), req.Price)
	if err != nil {
		respondInternalError(w, r, "failed to create payment intent", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CreateIntentResponse{ClientSecret: clientSecret})
}
