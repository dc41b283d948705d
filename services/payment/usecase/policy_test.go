package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/payguard/payguard/internal/pkg/feed"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/payguard/payguard/services/payment"
	"github.com/payguard/payguard/services/payment/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestUpdatePolicy_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPolicyRepo := mocks.NewMockPolicyRepo(ctrl)
	mockEventsGW := mocks.NewMockEventsGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockPolicyRepo, nil, nil, mockEventsGW, feed.NewHub(16))

	update := &models.PolicyUpdate{MaxTransactionAmount: decimalPtr(2000)}
	updated := testPolicy()
	updated.MaxTransactionAmount = decimal.NewFromInt(2000)

	mockPolicyRepo.EXPECT().GetPolicy(gomock.Any()).Return(testPolicy(), nil)
	mockPolicyRepo.EXPECT().UpdatePolicy(gomock.Any(), update).Return(updated, nil)
	mockEventsGW.EXPECT().PublishPolicyUpdated(gomock.Any(), updated).Return(nil)

	// Act
	result, err := uc.UpdatePolicy(context.Background(), update)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.MaxTransactionAmount.Equal(decimal.NewFromInt(2000)))
}

func TestUpdatePolicy_NegativeLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPolicyRepo := mocks.NewMockPolicyRepo(ctrl)
	uc := NewPaymentUC(testConfig(), mockPolicyRepo, nil, nil, nil, feed.NewHub(16))

	mockPolicyRepo.EXPECT().GetPolicy(gomock.Any()).Return(testPolicy(), nil)

	_, err := uc.UpdatePolicy(context.Background(), &models.PolicyUpdate{
		MaxTransactionAmount: decimalPtr(-5),
	})

	assert.ErrorIs(t, err, payment.ErrValidation)
}

func TestUpdatePolicy_BudgetBelowCurrentSpend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPolicyRepo := mocks.NewMockPolicyRepo(ctrl)
	uc := NewPaymentUC(testConfig(), mockPolicyRepo, nil, nil, nil, feed.NewHub(16))

	current := testPolicy()
	current.CurrentMonthlySpent = decimal.NewFromInt(3000)
	mockPolicyRepo.EXPECT().GetPolicy(gomock.Any()).Return(current, nil)

	_, err := uc.UpdatePolicy(context.Background(), &models.PolicyUpdate{
		MonthlyBudget: decimalPtr(2000),
	})

	assert.ErrorIs(t, err, payment.ErrValidation)
}

func TestGetPolicy_PropagatesStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPolicyRepo := mocks.NewMockPolicyRepo(ctrl)
	uc := NewPaymentUC(testConfig(), mockPolicyRepo, nil, nil, nil, feed.NewHub(16))

	mockPolicyRepo.EXPECT().GetPolicy(gomock.Any()).Return(nil, payment.ErrStorageUnavailable)

	_, err := uc.GetPolicy(context.Background())

	assert.ErrorIs(t, err, payment.ErrStorageUnavailable)
}

func TestListActivities_DefaultsAndCapsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockActivityRepo := mocks.NewMockActivityRepo(ctrl)
	uc := NewPaymentUC(testConfig(), nil, mockActivityRepo, nil, nil, feed.NewHub(16))

	mockActivityRepo.EXPECT().List(gomock.Any(), models.ActivityFilter{Limit: 50}).
		Return([]*models.ActivityRecord{}, nil)
	mockActivityRepo.EXPECT().List(gomock.Any(), models.ActivityFilter{Limit: maxActivityPageSize}).
		Return([]*models.ActivityRecord{}, nil)

	_, err := uc.ListActivities(context.Background(), models.ActivityFilter{})
	require.NoError(t, err)

	_, err = uc.ListActivities(context.Background(), models.ActivityFilter{Limit: 100000})
	require.NoError(t, err)
}
