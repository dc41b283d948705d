package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/payguard/payguard/internal/pkg/logger"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/payguard/payguard/internal/utils"
	"github.com/payguard/payguard/services/payment"
)

// GetPolicy returns the current spending policy
func (h *PaymentHandler) GetPolicy(c echo.Context) error {
	policy, err := h.paymentUC.GetPolicy(c.Request().Context())
	if err != nil {
		if errors.Is(err, payment.ErrStorageUnavailable) {
			return utils.ServiceUnavailableResponse(c, "Storage unavailable, try again later")
		}
		logger.Error("Failed to retrieve policy",
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve policy")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Policy retrieved", policy)
}

// UpdatePolicy applies a partial policy update
func (h *PaymentHandler) UpdatePolicy(c echo.Context) error {
	var update models.PolicyUpdate
	if err := c.Bind(&update); err != nil {
		logger.Warn("Invalid request payload for policy update",
			logger.Err(err),
			logger.String("endpoint", "UpdatePolicy"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	policy, err := h.paymentUC.UpdatePolicy(c.Request().Context(), &update)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, payment.ErrStorageUnavailable):
			return utils.ServiceUnavailableResponse(c, "Storage unavailable, try again later")
		default:
			logger.Error("Failed to update policy",
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to update policy")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Policy updated", policy)
}
