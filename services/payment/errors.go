package payment

import "errors"

var (
	// ErrWorkflowBusy is returned when an intent is submitted while
	// another transaction is still in flight
	ErrWorkflowBusy = errors.New("another transaction is already in progress")

	// ErrInvalidTransition is returned when an event is not valid for
	// the current transaction state
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrTransactionNotFound is returned when the referenced transaction
	// is not the active one
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrActivityNotFound is returned when a ledger record does not exist
	ErrActivityNotFound = errors.New("activity record not found")

	// ErrStorageUnavailable is returned when persistence stays
	// unreachable after bounded retries
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrExecutionTimeout is returned when the execution backend does
	// not answer within the configured timeout
	ErrExecutionTimeout = errors.New("execution timed out")

	// ErrValidation is returned for invalid caller-supplied input
	ErrValidation = errors.New("validation failed")
)
