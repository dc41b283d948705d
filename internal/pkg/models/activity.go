package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActivityOutcome classifies how a transaction reached a terminal state
type ActivityOutcome string

const (
	OutcomeApproved        ActivityOutcome = "approved"
	OutcomeDenied          ActivityOutcome = "denied"
	OutcomeBlockedByPolicy ActivityOutcome = "blocked_by_policy"
	OutcomeExecutionFailed ActivityOutcome = "execution_failed"
)

// ActivityRecord is an immutable ledger entry for a completed decision
type ActivityRecord struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	TransactionID uuid.UUID       `json:"transaction_id" db:"transaction_id"`
	Outcome       ActivityOutcome `json:"outcome" db:"outcome"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Currency      string          `json:"currency" db:"currency"`
	Recipient     string          `json:"recipient" db:"recipient"`
	RecipientName string          `json:"recipient_name,omitempty" db:"recipient_name"`
	Reasoning     string          `json:"reasoning,omitempty" db:"reasoning"`
	TxReference   string          `json:"tx_reference,omitempty" db:"tx_reference"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// ActivityFilter narrows ledger reads
type ActivityFilter struct {
	Outcome ActivityOutcome
	Limit   int
}
