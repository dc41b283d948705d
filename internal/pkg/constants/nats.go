package constants

// NATS subjects
const (
	// Activity ledger events
	SubjectActivityCreated = "payments.activity.created"
	SubjectActivityUpdated = "payments.activity.updated"
	SubjectActivityDeleted = "payments.activity.deleted"

	// Policy events
	SubjectPolicyUpdated = "payments.policy.updated"
)
