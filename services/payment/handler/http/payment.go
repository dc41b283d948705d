package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/payguard/payguard/internal/pkg/logger"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/payguard/payguard/internal/utils"
	"github.com/payguard/payguard/services/payment"
)

type intentResponse struct {
	Transaction *models.Transaction      `json:"transaction"`
	Validation  *models.PolicyValidation `json:"validation"`
}

// SubmitIntent handles new payment intent requests
func (h *PaymentHandler) SubmitIntent(c echo.Context) error {
	var intent models.PaymentIntent
	if err := c.Bind(&intent); err != nil {
		logger.Warn("Invalid request payload for payment intent",
			logger.Err(err),
			logger.String("endpoint", "SubmitIntent"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tx, validation, err := h.paymentUC.SubmitIntent(c.Request().Context(), &intent)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, payment.ErrWorkflowBusy):
			return utils.ConflictResponse(c, "Another transaction is already in progress")
		case errors.Is(err, payment.ErrStorageUnavailable):
			return utils.ServiceUnavailableResponse(c, "Storage unavailable, try again later")
		default:
			logger.Error("Failed to submit payment intent",
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to submit payment intent")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment intent submitted", intentResponse{
		Transaction: tx,
		Validation:  validation,
	})
}

// CurrentTransaction returns the transaction currently occupying the workflow
func (h *PaymentHandler) CurrentTransaction(c echo.Context) error {
	tx, ok := h.paymentUC.CurrentTransaction()
	if !ok {
		return utils.NotFoundResponse(c, "No transaction in progress")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Current transaction retrieved", tx)
}

// Approve handles approval of a transaction awaiting decision
func (h *PaymentHandler) Approve(c echo.Context) error {
	return h.decide(c, models.DecisionApprove)
}

// Deny handles denial of a transaction awaiting decision
func (h *PaymentHandler) Deny(c echo.Context) error {
	return h.decide(c, models.DecisionDeny)
}

func (h *PaymentHandler) decide(c echo.Context, decision models.Decision) error {
	txID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	tx, err := h.paymentUC.Decide(c.Request().Context(), txID, decision)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrTransactionNotFound):
			return utils.NotFoundResponse(c, "Transaction not found")
		case errors.Is(err, payment.ErrInvalidTransition):
			return utils.ConflictResponse(c, "Transaction is not awaiting approval")
		case errors.Is(err, payment.ErrStorageUnavailable):
			return utils.ServiceUnavailableResponse(c, "Storage unavailable, try again later")
		default:
			logger.Error("Failed to decide transaction",
				logger.Err(err),
				logger.String("transaction_id", txID.String()),
				logger.String("decision", string(decision)),
			)
			return utils.InternalServerErrorResponse(c, "Failed to process decision")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Decision recorded", tx)
}
