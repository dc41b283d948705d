package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/payguard/payguard/internal/pkg/feed"
	"github.com/payguard/payguard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/payguard/payguard/services/payment PaymentUC

// PaymentUC is the transaction approval workflow interface
type PaymentUC interface {
	// workflow
	SubmitIntent(ctx context.Context, intent *models.PaymentIntent) (*models.Transaction, *models.PolicyValidation, error)
	Decide(ctx context.Context, txID uuid.UUID, decision models.Decision) (*models.Transaction, error)
	CurrentTransaction() (*models.Transaction, bool)

	// policy
	GetPolicy(ctx context.Context) (*models.Policy, error)
	UpdatePolicy(ctx context.Context, update *models.PolicyUpdate) (*models.Policy, error)

	// activity ledger
	ListActivities(ctx context.Context, filter models.ActivityFilter) ([]*models.ActivityRecord, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*models.ActivityRecord, error)
	SubscribeActivities() *feed.Subscription
	UnsubscribeActivities(id uuid.UUID)
}
