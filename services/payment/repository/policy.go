package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/payguard/payguard/internal/pkg/constants"
	"github.com/payguard/payguard/internal/pkg/logger"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/payguard/payguard/services/payment"
	"github.com/shopspring/decimal"
)

const policySelectQuery = `
	SELECT id, max_transaction_amount, monthly_budget, current_monthly_spent,
		allow_list, block_list, created_at, updated_at
	FROM policies
	ORDER BY created_at DESC
	LIMIT 1
`

// GetPolicy returns the current policy, creating the default one if the
// table is empty
func (r *PolicyRepo) GetPolicy(ctx context.Context) (*models.Policy, error) {
	if cached := r.getCached(ctx); cached != nil {
		return cached, nil
	}

	var policy models.Policy
	err := r.retrier.Execute(ctx, func(ctx context.Context) error {
		err := r.db.GetContext(ctx, &policy, policySelectQuery)
		if errors.Is(err, sql.ErrNoRows) {
			return r.insertDefault(ctx, &policy)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrStorageUnavailable, err)
	}

	r.setCached(ctx, &policy)
	return &policy, nil
}

// UpdatePolicy applies the non-nil fields of the update and returns the
// updated policy
func (r *PolicyRepo) UpdatePolicy(ctx context.Context, update *models.PolicyUpdate) (*models.Policy, error) {
	var policy models.Policy
	err := r.retrier.Execute(ctx, func(ctx context.Context) error {
		err := r.db.GetContext(ctx, &policy, policySelectQuery)
		if errors.Is(err, sql.ErrNoRows) {
			return r.insertDefault(ctx, &policy)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrStorageUnavailable, err)
	}

	if update.MaxTransactionAmount != nil {
		policy.MaxTransactionAmount = *update.MaxTransactionAmount
	}
	if update.MonthlyBudget != nil {
		policy.MonthlyBudget = *update.MonthlyBudget
	}
	if update.AllowList != nil {
		policy.AllowList = *update.AllowList
	}
	if update.BlockList != nil {
		policy.BlockList = *update.BlockList
	}
	policy.UpdatedAt = time.Now()

	query := `
		UPDATE policies
		SET max_transaction_amount = :max_transaction_amount,
			monthly_budget = :monthly_budget,
			allow_list = :allow_list,
			block_list = :block_list,
			updated_at = :updated_at
		WHERE id = :id
	`
	err = r.retrier.Execute(ctx, func(ctx context.Context) error {
		_, err := r.db.NamedExecContext(ctx, query, &policy)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrStorageUnavailable, err)
	}

	r.invalidateCache(ctx)
	return &policy, nil
}

// IncrementMonthlySpent atomically adds the amount to the running
// monthly total of the current policy
func (r *PolicyRepo) IncrementMonthlySpent(ctx context.Context, amount decimal.Decimal) error {
	query := `
		UPDATE policies
		SET current_monthly_spent = current_monthly_spent + $1,
			updated_at = $2
		WHERE id = (SELECT id FROM policies ORDER BY created_at DESC LIMIT 1)
	`
	err := r.retrier.Execute(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, amount, time.Now())
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %v", payment.ErrStorageUnavailable, err)
	}

	r.invalidateCache(ctx)
	return nil
}

// insertDefault seeds the policy table from the configured defaults
func (r *PolicyRepo) insertDefault(ctx context.Context, policy *models.Policy) error {
	now := time.Now()
	*policy = models.Policy{
		ID:                   uuid.New(),
		MaxTransactionAmount: decimal.NewFromFloat(r.cfg.Policy.MaxTransactionAmount),
		MonthlyBudget:        decimal.NewFromFloat(r.cfg.Policy.MonthlyBudget),
		CurrentMonthlySpent:  decimal.Zero,
		AllowList:            models.StringList(r.cfg.Policy.AllowList),
		BlockList:            models.StringList{},
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	query := `
		INSERT INTO policies (id, max_transaction_amount, monthly_budget,
			current_monthly_spent, allow_list, block_list, created_at, updated_at)
		VALUES (:id, :max_transaction_amount, :monthly_budget,
			:current_monthly_spent, :allow_list, :block_list, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, policy)
	if err != nil {
		return fmt.Errorf("failed to insert default policy: %w", err)
	}

	logger.Info("Created default policy",
		logger.String("policy_id", policy.ID.String()))
	return nil
}

func (r *PolicyRepo) getCached(ctx context.Context) *models.Policy {
	if r.redisClient == nil {
		return nil
	}

	raw, err := r.redisClient.Get(ctx, constants.KeyPolicyCurrent)
	if err != nil {
		return nil
	}

	var policy models.Policy
	if err := json.Unmarshal([]byte(raw), &policy); err != nil {
		logger.Debug("Failed to decode cached policy", logger.Err(err))
		return nil
	}
	return &policy
}

func (r *PolicyRepo) setCached(ctx context.Context, policy *models.Policy) {
	if r.redisClient == nil {
		return
	}

	raw, err := json.Marshal(policy)
	if err != nil {
		return
	}
	if err := r.redisClient.Set(ctx, constants.KeyPolicyCurrent, raw, constants.TTLPolicyCache*time.Second); err != nil {
		logger.Debug("Failed to cache policy", logger.Err(err))
	}
}

func (r *PolicyRepo) invalidateCache(ctx context.Context) {
	if r.redisClient == nil {
		return
	}
	if err := r.redisClient.Delete(ctx, constants.KeyPolicyCurrent); err != nil {
		logger.Debug("Failed to invalidate policy cache", logger.Err(err))
	}
}
