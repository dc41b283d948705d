package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StringList is a string slice stored as a JSON array in a jsonb column
type StringList []string

// Value implements driver.Valuer for jsonb storage
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for jsonb storage
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// Policy represents the spending policy governing transaction approval
type Policy struct {
	ID                   uuid.UUID       `json:"id" db:"id"`
	MaxTransactionAmount decimal.Decimal `json:"max_transaction_amount" db:"max_transaction_amount"`
	MonthlyBudget        decimal.Decimal `json:"monthly_budget" db:"monthly_budget"`
	CurrentMonthlySpent  decimal.Decimal `json:"current_monthly_spent" db:"current_monthly_spent"`
	AllowList            StringList      `json:"allow_list" db:"allow_list"`
	BlockList            StringList      `json:"block_list" db:"block_list"`
	CreatedAt            time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at" db:"updated_at"`
}

// RemainingBudget returns the unspent monthly budget, clamped at zero
func (p *Policy) RemainingBudget() decimal.Decimal {
	remaining := p.MonthlyBudget.Sub(p.CurrentMonthlySpent)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// PolicyUpdate carries a partial policy update; nil fields are left unchanged
type PolicyUpdate struct {
	MaxTransactionAmount *decimal.Decimal `json:"max_transaction_amount"`
	MonthlyBudget        *decimal.Decimal `json:"monthly_budget"`
	AllowList            *StringList      `json:"allow_list"`
	BlockList            *StringList      `json:"block_list"`
}

// PolicyCheck is the result of a single policy rule evaluation
type PolicyCheck struct {
	Rule    string `json:"rule"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// PolicyValidation is the result of validating an intent against the policy
type PolicyValidation struct {
	IsValid    bool          `json:"is_valid"`
	Violations []string      `json:"violations"`
	Checks     []PolicyCheck `json:"checks"`
}
