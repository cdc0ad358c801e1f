package http

import (
	"net/http"

	"mortgage-strategy/domain"
	"mortgage-strategy/service"
)

type PaymentHandler struct{}

func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{}
}

func (h *PaymentHandler) CalculatePayment(w http.ResponseWriter, r *http.Request) {
	var input domain.PaymentInput
	if !decodeJSONRequest(w, r, &input) {
		return
	}

	result, err := service.CalculatePayment(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, r, result)
}
