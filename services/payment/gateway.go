package payment

import (
	"context"

	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/payguard/payguard/services/payment ExecutorGW,EventsGW

// ExecutorGW performs the actual fund transfer once a transaction is approved
type ExecutorGW interface {
	// Execute submits the transfer and returns the transaction reference.
	// The context deadline bounds the wait for a result.
	Execute(ctx context.Context, amount decimal.Decimal, currency, recipient string) (string, error)
}

// EventsGW publishes workflow events to the message bus
type EventsGW interface {
	PublishActivityEvent(ctx context.Context, event *models.ActivityEvent) error
	PublishPolicyUpdated(ctx context.Context, policy *models.Policy) error
}
