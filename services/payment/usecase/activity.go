package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/payguard/payguard/internal/pkg/feed"
	"github.com/payguard/payguard/internal/pkg/models"
)

const maxActivityPageSize = 500

// ListActivities returns a snapshot of the activity ledger, newest first
func (uc *PaymentUC) ListActivities(ctx context.Context, filter models.ActivityFilter) ([]*models.ActivityRecord, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > maxActivityPageSize {
		filter.Limit = maxActivityPageSize
	}

	records, err := uc.activityRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return records, nil
}

// GetActivity returns a single ledger record
func (uc *PaymentUC) GetActivity(ctx context.Context, id uuid.UUID) (*models.ActivityRecord, error) {
	record, err := uc.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// SubscribeActivities registers an observer for ledger mutations
func (uc *PaymentUC) SubscribeActivities() *feed.Subscription {
	return uc.hub.Subscribe()
}

// UnsubscribeActivities removes an observer; safe to call repeatedly
func (uc *PaymentUC) UnsubscribeActivities(id uuid.UUID) {
	uc.hub.Unsubscribe(id)
}
