package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/payguard/payguard/internal/pkg/logger"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/payguard/payguard/internal/utils"
	"github.com/payguard/payguard/services/payment"
)

// ListActivities returns ledger records, newest first
func (h *PaymentHandler) ListActivities(c echo.Context) error {
	filter := models.ActivityFilter{
		Outcome: models.ActivityOutcome(c.QueryParam("outcome")),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return utils.BadRequestResponse(c, "Invalid limit parameter")
		}
		filter.Limit = limit
	}

	records, err := h.paymentUC.ListActivities(c.Request().Context(), filter)
	if err != nil {
		if errors.Is(err, payment.ErrStorageUnavailable) {
			return utils.ServiceUnavailableResponse(c, "Storage unavailable, try again later")
		}
		logger.Error("Failed to list activities",
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list activities")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Activities retrieved", records)
}

// GetActivity returns a single ledger record
func (h *PaymentHandler) GetActivity(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid activity ID")
	}

	record, err := h.paymentUC.GetActivity(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrActivityNotFound):
			return utils.NotFoundResponse(c, "Activity not found")
		case errors.Is(err, payment.ErrStorageUnavailable):
			return utils.ServiceUnavailableResponse(c, "Storage unavailable, try again later")
		default:
			logger.Error("Failed to retrieve activity",
				logger.Err(err),
				logger.String("activity_id", id.String()),
			)
			return utils.InternalServerErrorResponse(c, "Failed to retrieve activity")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Activity retrieved", record)
}
