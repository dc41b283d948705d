package usecase

import (
	"context"
	"fmt"

	"github.com/payguard/payguard/internal/pkg/logger"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/payguard/payguard/services/payment"
)

// GetPolicy returns the current spending policy
func (uc *PaymentUC) GetPolicy(ctx context.Context) (*models.Policy, error) {
	policy, err := uc.policyRepo.GetPolicy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}
	return policy, nil
}

// UpdatePolicy applies a partial policy update after validating it
// against the current policy
func (uc *PaymentUC) UpdatePolicy(ctx context.Context, update *models.PolicyUpdate) (*models.Policy, error) {
	if update == nil {
		return nil, fmt.Errorf("%w: update is required", payment.ErrValidation)
	}

	current, err := uc.policyRepo.GetPolicy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	if update.MaxTransactionAmount != nil && !update.MaxTransactionAmount.IsPositive() {
		return nil, fmt.Errorf("%w: max_transaction_amount must be positive", payment.ErrValidation)
	}
	if update.MonthlyBudget != nil {
		if !update.MonthlyBudget.IsPositive() {
			return nil, fmt.Errorf("%w: monthly_budget must be positive", payment.ErrValidation)
		}
		if update.MonthlyBudget.LessThan(current.CurrentMonthlySpent) {
			return nil, fmt.Errorf("%w: monthly_budget cannot be below the amount already spent (%s)",
				payment.ErrValidation, current.CurrentMonthlySpent.StringFixed(2))
		}
	}

	updated, err := uc.policyRepo.UpdatePolicy(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update policy: %w", err)
	}

	logger.Info("Policy updated",
		logger.String("policy_id", updated.ID.String()))

	if uc.eventsGW != nil {
		if err := uc.eventsGW.PublishPolicyUpdated(ctx, updated); err != nil {
			logger.Warn("Failed to publish policy update event",
				logger.Err(err))
		}
	}

	return updated, nil
}
