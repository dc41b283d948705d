package usecase

import (
	"fmt"
	"strings"

	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// ValidatePolicy evaluates a proposed transfer against the policy. It is a
// pure function: every rule runs, violations accumulate, and nothing is
// mutated, so it is safe to call repeatedly (including the re-check right
// before execution).
func ValidatePolicy(policy *models.Policy, amount decimal.Decimal, recipient, recipientName string) models.PolicyValidation {
	violations := []string{}
	checks := []models.PolicyCheck{}

	// Rule 1: per-transaction ceiling
	maxTxPassed := amount.LessThanOrEqual(policy.MaxTransactionAmount)
	checks = append(checks, models.PolicyCheck{
		Rule:    "Max Transaction Limit",
		Passed:  maxTxPassed,
		Message: fmt.Sprintf("%s of max %s", amount.StringFixed(2), policy.MaxTransactionAmount.StringFixed(2)),
	})
	if !maxTxPassed {
		violations = append(violations, fmt.Sprintf(
			"amount %s exceeds per-transaction limit of %s",
			amount.StringFixed(2), policy.MaxTransactionAmount.StringFixed(2)))
	}

	// Rule 2: monthly budget
	remaining := policy.RemainingBudget()
	budgetPassed := policy.CurrentMonthlySpent.Add(amount).LessThanOrEqual(policy.MonthlyBudget)
	budgetMsg := fmt.Sprintf("remaining budget %s", remaining.StringFixed(2))
	if !budgetPassed {
		overBy := policy.CurrentMonthlySpent.Add(amount).Sub(policy.MonthlyBudget)
		budgetMsg = fmt.Sprintf("would exceed budget by %s", overBy.StringFixed(2))
	}
	checks = append(checks, models.PolicyCheck{
		Rule:    "Monthly Budget",
		Passed:  budgetPassed,
		Message: budgetMsg,
	})
	if !budgetPassed {
		violations = append(violations, fmt.Sprintf(
			"would exceed monthly budget, remaining %s", remaining.StringFixed(2)))
	}

	// Rule 3: allow list, informational only. Absence from the allow
	// list is not a violation.
	if len(policy.AllowList) > 0 {
		onAllowList := matchesList(policy.AllowList, recipient, recipientName)
		allowMsg := "recipient is not on the approved vendor list"
		if onAllowList {
			allowMsg = "recipient is on the approved vendor list"
		}
		checks = append(checks, models.PolicyCheck{
			Rule:    "Approved Vendor",
			Passed:  onAllowList,
			Message: allowMsg,
		})
	}

	// Rule 4: block list. Takes precedence over allow-list membership.
	if matchesList(policy.BlockList, recipient, recipientName) {
		checks = append(checks, models.PolicyCheck{
			Rule:    "Block List",
			Passed:  false,
			Message: fmt.Sprintf("%s is on the block list", displayName(recipient, recipientName)),
		})
		violations = append(violations, fmt.Sprintf(
			"recipient %s is blocked by policy", displayName(recipient, recipientName)))
	}

	return models.PolicyValidation{
		IsValid:    len(violations) == 0,
		Violations: violations,
		Checks:     checks,
	}
}

// matchesList reports whether any list entry is a case-insensitive
// substring of the recipient address or name
func matchesList(list models.StringList, recipient, recipientName string) bool {
	for _, entry := range list {
		needle := strings.ToLower(strings.TrimSpace(entry))
		if needle == "" {
			continue
		}
		if strings.Contains(strings.ToLower(recipient), needle) {
			return true
		}
		if recipientName != "" && strings.Contains(strings.ToLower(recipientName), needle) {
			return true
		}
	}
	return false
}

func displayName(recipient, recipientName string) string {
	if recipientName != "" {
		return recipientName
	}
	return recipient
}

// buildReasoning produces the human-readable justification attached to a
// transaction before the approval gate
func buildReasoning(intent *models.PaymentIntent, policy *models.Policy, validation models.PolicyValidation) string {
	target := displayName(intent.Recipient, intent.RecipientName)

	if validation.IsValid {
		return fmt.Sprintf(
			"Payment of %s %s to %s is within the %s per-transaction limit and leaves %s of the monthly budget.",
			intent.Amount.StringFixed(2), intent.Currency, target,
			policy.MaxTransactionAmount.StringFixed(2),
			policy.RemainingBudget().Sub(intent.Amount).StringFixed(2))
	}

	return fmt.Sprintf(
		"Payment of %s %s to %s violates policy: %s.",
		intent.Amount.StringFixed(2), intent.Currency, target,
		strings.Join(validation.Violations, "; "))
}
