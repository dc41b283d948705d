package models

import "time"

// ActivityEventType identifies the kind of ledger mutation
type ActivityEventType string

const (
	ActivityCreated ActivityEventType = "created"
	ActivityUpdated ActivityEventType = "updated"
	ActivityDeleted ActivityEventType = "deleted"
)

// ActivityEvent is pushed to subscribers for every ledger mutation
type ActivityEvent struct {
	Type      ActivityEventType `json:"type"`
	Record    ActivityRecord    `json:"record"`
	Timestamp time.Time         `json:"timestamp"`
}
