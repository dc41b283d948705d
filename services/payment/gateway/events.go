package gateway

import (
	"context"
	"fmt"

	"github.com/payguard/payguard/internal/pkg/constants"
	"github.com/payguard/payguard/internal/pkg/models"
)

// PublishActivityEvent publishes a ledger mutation to the message bus
func (g *EventsGW) PublishActivityEvent(_ context.Context, event *models.ActivityEvent) error {
	var subject string
	switch event.Type {
	case models.ActivityCreated:
		subject = constants.SubjectActivityCreated
	case models.ActivityUpdated:
		subject = constants.SubjectActivityUpdated
	case models.ActivityDeleted:
		subject = constants.SubjectActivityDeleted
	default:
		return fmt.Errorf("unknown activity event type: %s", event.Type)
	}

	return g.producer.Publish(subject, event)
}

// PublishPolicyUpdated announces a policy change to the message bus
func (g *EventsGW) PublishPolicyUpdated(_ context.Context, policy *models.Policy) error {
	return g.producer.Publish(constants.SubjectPolicyUpdated, policy)
}
