package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionState represents the lifecycle state of a payment transaction
type TransactionState string

const (
	StateThinking         TransactionState = "thinking"
	StateAwaitingApproval TransactionState = "awaiting_approval"
	StateExecuting        TransactionState = "executing"
	StateConfirmed        TransactionState = "confirmed"
	StateRejected         TransactionState = "rejected"
	StateFailed           TransactionState = "failed"
)

// IsTerminal reports whether the state ends the workflow
func (s TransactionState) IsTerminal() bool {
	return s == StateConfirmed || s == StateRejected || s == StateFailed
}

// PaymentIntent is a structured request to transfer funds
type PaymentIntent struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Recipient     string          `json:"recipient"`
	RecipientName string          `json:"recipient_name,omitempty"`
}

// Transaction represents a single payment attempt moving through the workflow
type Transaction struct {
	ID            uuid.UUID        `json:"id"`
	Amount        decimal.Decimal  `json:"amount"`
	Currency      string           `json:"currency"`
	Recipient     string           `json:"recipient"`
	RecipientName string           `json:"recipient_name,omitempty"`
	State         TransactionState `json:"state"`
	Reasoning     string           `json:"reasoning,omitempty"`
	TxReference   string           `json:"tx_reference,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	DecidedAt     *time.Time       `json:"decided_at,omitempty"`
}

// Decision is a human verdict on a transaction awaiting approval
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDeny    Decision = "deny"
)
