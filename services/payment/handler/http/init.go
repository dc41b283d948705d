package http

import (
	"github.com/payguard/payguard/services/payment"
)

// PaymentHandler handles HTTP requests for the payment workflow
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}
