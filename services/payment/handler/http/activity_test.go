package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/payguard/payguard/services/payment"
	"github.com/payguard/payguard/services/payment/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActivities_WithFilter(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/activities?outcome=denied&limit=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		ListActivities(gomock.Any(), models.ActivityFilter{
			Outcome: models.OutcomeDenied,
			Limit:   10,
		}).
		Return([]*models.ActivityRecord{}, nil)

	// Act
	err := handler.ListActivities(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListActivities_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/activities?limit=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListActivities(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetActivity_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	id := uuid.New()
	c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetPath("/api/v1/activities/:id")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	mockUC.EXPECT().
		GetActivity(gomock.Any(), id).
		Return(nil, payment.ErrActivityNotFound)

	err := handler.GetActivity(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
