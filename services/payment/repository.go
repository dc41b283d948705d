package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/payguard/payguard/services/payment PolicyRepo,ActivityRepo

// PolicyRepo persists the spending policy
type PolicyRepo interface {
	// GetPolicy returns the current policy, creating the default one if
	// no policy exists yet
	GetPolicy(ctx context.Context) (*models.Policy, error)

	// UpdatePolicy applies the non-nil fields and returns the updated policy
	UpdatePolicy(ctx context.Context, update *models.PolicyUpdate) (*models.Policy, error)

	// IncrementMonthlySpent atomically adds the amount to the running
	// monthly total
	IncrementMonthlySpent(ctx context.Context, amount decimal.Decimal) error
}

// ActivityRepo persists the append-only activity ledger
type ActivityRepo interface {
	Append(ctx context.Context, record *models.ActivityRecord) error
	List(ctx context.Context, filter models.ActivityFilter) ([]*models.ActivityRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ActivityRecord, error)
}
