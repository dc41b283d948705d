package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/payguard/payguard/internal/pkg/logger"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/payguard/payguard/services/payment"
)

// SubmitIntent starts the approval workflow for a structured payment
// intent. The workflow is single-flight: while a transaction is in a
// non-terminal state, further submissions fail with ErrWorkflowBusy.
func (uc *PaymentUC) SubmitIntent(ctx context.Context, intent *models.PaymentIntent) (*models.Transaction, *models.PolicyValidation, error) {
	if err := validateIntent(intent); err != nil {
		return nil, nil, err
	}

	uc.mu.Lock()
	if uc.active != nil {
		uc.mu.Unlock()
		return nil, nil, payment.ErrWorkflowBusy
	}

	tx := &models.Transaction{
		ID:            uuid.New(),
		Amount:        intent.Amount,
		Currency:      intent.Currency,
		Recipient:     intent.Recipient,
		RecipientName: intent.RecipientName,
		State:         models.StateThinking,
		CreatedAt:     time.Now(),
	}
	uc.active = tx
	uc.mu.Unlock()

	policy, err := uc.policyRepo.GetPolicy(ctx)
	if err != nil {
		// Release the slot; nothing was decided.
		uc.mu.Lock()
		uc.active = nil
		uc.mu.Unlock()
		return nil, nil, fmt.Errorf("failed to load policy: %w", err)
	}

	validation := ValidatePolicy(policy, intent.Amount, intent.Recipient, intent.RecipientName)

	uc.mu.Lock()
	tx.Reasoning = buildReasoning(intent, policy, validation)

	if !validation.IsValid {
		uc.finishLocked(tx, models.StateRejected)
		snap := *tx
		uc.mu.Unlock()

		logger.Info("Transaction blocked by policy",
			logger.String("transaction_id", tx.ID.String()),
			logger.Strings("violations", validation.Violations))

		recordErr := uc.recordOutcome(ctx, &snap, models.OutcomeBlockedByPolicy)
		return &snap, &validation, recordErr
	}

	tx.State = models.StateAwaitingApproval
	snap := *tx
	uc.mu.Unlock()

	logger.Info("Transaction awaiting approval",
		logger.String("transaction_id", tx.ID.String()),
		logger.String("recipient", tx.Recipient))

	return &snap, &validation, nil
}

// Decide applies a human verdict to the transaction awaiting approval
func (uc *PaymentUC) Decide(ctx context.Context, txID uuid.UUID, decision models.Decision) (*models.Transaction, error) {
	switch decision {
	case models.DecisionApprove:
		return uc.approve(ctx, txID)
	case models.DecisionDeny:
		return uc.deny(ctx, txID)
	default:
		return nil, fmt.Errorf("%w: unknown decision %q", payment.ErrValidation, decision)
	}
}

// CurrentTransaction returns a snapshot of the active transaction, if any
func (uc *PaymentUC) CurrentTransaction() (*models.Transaction, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.active == nil {
		return nil, false
	}
	snap := *uc.active
	return &snap, true
}

// approve re-validates against the live policy and, if it still passes,
// hands the transaction to the execution backend. The re-check is
// deliberate: limits or spend may have changed since the approval gate
// was shown.
func (uc *PaymentUC) approve(ctx context.Context, txID uuid.UUID) (*models.Transaction, error) {
	uc.mu.Lock()

	tx := uc.active
	if tx == nil || tx.ID != txID {
		uc.mu.Unlock()
		return nil, payment.ErrTransactionNotFound
	}
	if tx.State != models.StateAwaitingApproval {
		uc.mu.Unlock()
		return nil, payment.ErrInvalidTransition
	}

	policy, err := uc.policyRepo.GetPolicy(ctx)
	if err != nil {
		// State unchanged; the caller may retry the decision.
		uc.mu.Unlock()
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	validation := ValidatePolicy(policy, tx.Amount, tx.Recipient, tx.RecipientName)
	if !validation.IsValid {
		uc.finishLocked(tx, models.StateRejected)
		snap := *tx
		uc.mu.Unlock()

		logger.Warn("Approval blocked by policy re-check",
			logger.String("transaction_id", tx.ID.String()),
			logger.Strings("violations", validation.Violations))

		recordErr := uc.recordOutcome(ctx, &snap, models.OutcomeBlockedByPolicy)
		return &snap, recordErr
	}

	tx.State = models.StateExecuting
	snap := *tx
	uc.mu.Unlock()

	logger.Info("Transaction approved, executing transfer",
		logger.String("transaction_id", tx.ID.String()),
		logger.String("amount", tx.Amount.String()))

	// The backend call is the one slow operation in the workflow; the
	// caller is released while the transfer settles.
	go uc.executeTransfer(tx)

	return &snap, nil
}

func (uc *PaymentUC) deny(ctx context.Context, txID uuid.UUID) (*models.Transaction, error) {
	uc.mu.Lock()

	tx := uc.active
	if tx == nil || tx.ID != txID {
		uc.mu.Unlock()
		return nil, payment.ErrTransactionNotFound
	}
	if tx.State != models.StateAwaitingApproval {
		uc.mu.Unlock()
		return nil, payment.ErrInvalidTransition
	}

	uc.finishLocked(tx, models.StateRejected)
	snap := *tx
	uc.mu.Unlock()

	logger.Info("Transaction denied",
		logger.String("transaction_id", tx.ID.String()))

	recordErr := uc.recordOutcome(ctx, &snap, models.OutcomeDenied)
	return &snap, recordErr
}

// executeTransfer awaits the execution backend and applies the result.
// It runs outside the mutex; the terminal transition re-acquires it.
func (uc *PaymentUC) executeTransfer(tx *models.Transaction) {
	timeout := time.Duration(uc.cfg.Executor.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ref, err := uc.executorGW.Execute(ctx, tx.Amount, tx.Currency, tx.Recipient)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = payment.ErrExecutionTimeout
		}
		uc.onExecutionFailure(tx.ID, err)
		return
	}

	uc.onExecutionSuccess(tx.ID, ref)
}

func (uc *PaymentUC) onExecutionSuccess(txID uuid.UUID, ref string) {
	uc.mu.Lock()

	tx := uc.active
	if tx == nil || tx.ID != txID || tx.State != models.StateExecuting {
		uc.mu.Unlock()
		logger.Warn("Stale execution result ignored",
			logger.String("transaction_id", txID.String()))
		return
	}

	tx.TxReference = ref
	uc.finishLocked(tx, models.StateConfirmed)
	snap := *tx
	uc.mu.Unlock()

	ctx := context.Background()

	// Budget accounting happens only here, never at validation time.
	if err := uc.policyRepo.IncrementMonthlySpent(ctx, snap.Amount); err != nil {
		logger.Error("Failed to record monthly spend",
			logger.String("transaction_id", snap.ID.String()),
			logger.Err(err))
	}

	if err := uc.recordOutcome(ctx, &snap, models.OutcomeApproved); err != nil {
		logger.Error("Failed to record confirmed transaction",
			logger.String("transaction_id", snap.ID.String()),
			logger.Err(err))
	}

	logger.Info("Transaction confirmed",
		logger.String("transaction_id", snap.ID.String()),
		logger.String("tx_reference", ref))
}

func (uc *PaymentUC) onExecutionFailure(txID uuid.UUID, execErr error) {
	uc.mu.Lock()

	tx := uc.active
	if tx == nil || tx.ID != txID || tx.State != models.StateExecuting {
		uc.mu.Unlock()
		logger.Warn("Stale execution failure ignored",
			logger.String("transaction_id", txID.String()))
		return
	}

	uc.finishLocked(tx, models.StateFailed)
	snap := *tx
	uc.mu.Unlock()

	logger.Error("Transfer execution failed",
		logger.String("transaction_id", snap.ID.String()),
		logger.Err(execErr))

	if err := uc.recordOutcome(context.Background(), &snap, models.OutcomeExecutionFailed); err != nil {
		logger.Error("Failed to record failed transaction",
			logger.String("transaction_id", snap.ID.String()),
			logger.Err(err))
	}
}

// finishLocked moves the transaction to a terminal state and frees the
// single-flight slot. Callers must hold uc.mu.
func (uc *PaymentUC) finishLocked(tx *models.Transaction, state models.TransactionState) {
	now := time.Now()
	tx.State = state
	tx.DecidedAt = &now
	uc.active = nil
}

// recordOutcome appends the ledger record for a terminal transition and
// notifies subscribers
func (uc *PaymentUC) recordOutcome(ctx context.Context, tx *models.Transaction, outcome models.ActivityOutcome) error {
	record := &models.ActivityRecord{
		ID:            uuid.New(),
		TransactionID: tx.ID,
		Outcome:       outcome,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		Recipient:     tx.Recipient,
		RecipientName: tx.RecipientName,
		Reasoning:     tx.Reasoning,
		TxReference:   tx.TxReference,
		CreatedAt:     time.Now(),
	}

	if err := uc.activityRepo.Append(ctx, record); err != nil {
		return fmt.Errorf("failed to append activity record: %w", err)
	}

	event := models.ActivityEvent{
		Type:      models.ActivityCreated,
		Record:    *record,
		Timestamp: record.CreatedAt,
	}

	uc.hub.Publish(event)

	if uc.eventsGW != nil {
		if err := uc.eventsGW.PublishActivityEvent(ctx, &event); err != nil {
			logger.Warn("Failed to publish activity event",
				logger.String("record_id", record.ID.String()),
				logger.Err(err))
		}
	}

	return nil
}

func validateIntent(intent *models.PaymentIntent) error {
	if intent == nil {
		return fmt.Errorf("%w: intent is required", payment.ErrValidation)
	}
	if !intent.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", payment.ErrValidation)
	}
	if intent.Recipient == "" {
		return fmt.Errorf("%w: recipient is required", payment.ErrValidation)
	}
	if intent.Currency == "" {
		intent.Currency = "USDC"
	}
	return nil
}
