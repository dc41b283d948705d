package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/payguard/payguard/services/payment"
	"github.com/payguard/payguard/services/payment/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSubmitIntent_Created(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	requestBody := `{"amount": "120.50", "currency": "USDC", "recipient": "payments@stripe.com", "recipient_name": "Stripe"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/payments/intents", requestBody)

	tx := &models.Transaction{
		ID:        uuid.New(),
		Amount:    decimal.RequireFromString("120.50"),
		Currency:  "USDC",
		Recipient: "payments@stripe.com",
		State:     models.StateAwaitingApproval,
	}
	validation := &models.PolicyValidation{IsValid: true}

	mockUC.EXPECT().
		SubmitIntent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, intent *models.PaymentIntent) (*models.Transaction, *models.PolicyValidation, error) {
			assert.Equal(t, "payments@stripe.com", intent.Recipient)
			assert.True(t, intent.Amount.Equal(decimal.RequireFromString("120.50")))
			return tx, validation, nil
		})

	// Act
	err := handler.SubmitIntent(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok)
	txData, ok := data["transaction"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "awaiting_approval", txData["state"])
}

func TestSubmitIntent_WorkflowBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/api/v1/payments/intents",
		`{"amount": "10", "recipient": "payments@stripe.com"}`)

	mockUC.EXPECT().
		SubmitIntent(gomock.Any(), gomock.Any()).
		Return(nil, nil, payment.ErrWorkflowBusy)

	err := handler.SubmitIntent(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitIntent_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/api/v1/payments/intents",
		`{"amount": "-5", "recipient": "payments@stripe.com"}`)

	mockUC.EXPECT().
		SubmitIntent(gomock.Any(), gomock.Any()).
		Return(nil, nil, payment.ErrValidation)

	err := handler.SubmitIntent(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitIntent_StorageUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/api/v1/payments/intents",
		`{"amount": "10", "recipient": "payments@stripe.com"}`)

	mockUC.EXPECT().
		SubmitIntent(gomock.Any(), gomock.Any()).
		Return(nil, nil, payment.ErrStorageUnavailable)

	err := handler.SubmitIntent(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCurrentTransaction_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodGet, "/api/v1/payments/transactions/current", "")

	mockUC.EXPECT().CurrentTransaction().Return(&models.Transaction{
		ID:    uuid.New(),
		State: models.StateAwaitingApproval,
	}, true)

	err := handler.CurrentTransaction(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCurrentTransaction_Idle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodGet, "/api/v1/payments/transactions/current", "")

	mockUC.EXPECT().CurrentTransaction().Return(nil, false)

	err := handler.CurrentTransaction(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApprove_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	txID := uuid.New()
	c, rec := newTestContext(http.MethodPost, "/", "")
	c.SetPath("/api/v1/payments/transactions/:id/approve")
	c.SetParamNames("id")
	c.SetParamValues(txID.String())

	mockUC.EXPECT().
		Decide(gomock.Any(), txID, models.DecisionApprove).
		Return(&models.Transaction{ID: txID, State: models.StateExecuting}, nil)

	// Act
	err := handler.Approve(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApprove_InvalidTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	txID := uuid.New()
	c, rec := newTestContext(http.MethodPost, "/", "")
	c.SetPath("/api/v1/payments/transactions/:id/approve")
	c.SetParamNames("id")
	c.SetParamValues(txID.String())

	mockUC.EXPECT().
		Decide(gomock.Any(), txID, models.DecisionApprove).
		Return(nil, payment.ErrInvalidTransition)

	err := handler.Approve(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeny_TransactionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	txID := uuid.New()
	c, rec := newTestContext(http.MethodPost, "/", "")
	c.SetPath("/api/v1/payments/transactions/:id/deny")
	c.SetParamNames("id")
	c.SetParamValues(txID.String())

	mockUC.EXPECT().
		Decide(gomock.Any(), txID, models.DecisionDeny).
		Return(nil, payment.ErrTransactionNotFound)

	err := handler.Deny(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDecide_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/", "")
	c.SetPath("/api/v1/payments/transactions/:id/approve")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.Approve(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
