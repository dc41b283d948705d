package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/payguard/payguard/services/payment"
)

// Append inserts a new ledger record. Records are never updated or
// deleted afterwards.
func (r *ActivityRepo) Append(ctx context.Context, record *models.ActivityRecord) error {
	query := `
		INSERT INTO activities (id, transaction_id, outcome, amount, currency,
			recipient, recipient_name, reasoning, tx_reference, created_at)
		VALUES (:id, :transaction_id, :outcome, :amount, :currency,
			:recipient, :recipient_name, :reasoning, :tx_reference, :created_at)
	`
	err := r.retrier.Execute(ctx, func(ctx context.Context) error {
		_, err := r.db.NamedExecContext(ctx, query, record)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %v", payment.ErrStorageUnavailable, err)
	}

	return nil
}

// List returns a snapshot of ledger records, newest first
func (r *ActivityRepo) List(ctx context.Context, filter models.ActivityFilter) ([]*models.ActivityRecord, error) {
	query := `
		SELECT id, transaction_id, outcome, amount, currency, recipient,
			recipient_name, reasoning, tx_reference, created_at
		FROM activities
	`
	args := []interface{}{}
	if filter.Outcome != "" {
		query += ` WHERE outcome = $1`
		args = append(args, filter.Outcome)
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, filter.Limit)
	}

	records := []*models.ActivityRecord{}
	err := r.retrier.Execute(ctx, func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &records, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrStorageUnavailable, err)
	}

	return records, nil
}

// GetByID returns a single ledger record
func (r *ActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ActivityRecord, error) {
	query := `
		SELECT id, transaction_id, outcome, amount, currency, recipient,
			recipient_name, reasoning, tx_reference, created_at
		FROM activities
		WHERE id = $1
	`

	var record models.ActivityRecord
	err := r.db.GetContext(ctx, &record, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrActivityNotFound
		}
		return nil, fmt.Errorf("%w: %v", payment.ErrStorageUnavailable, err)
	}

	return &record, nil
}
