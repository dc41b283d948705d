package usecase

import (
	"sync"

	"github.com/payguard/payguard/internal/pkg/feed"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/payguard/payguard/services/payment"
)

// PaymentUC implements the payment.PaymentUC interface. It owns the
// single active transaction; every transition goes through its mutex.
type PaymentUC struct {
	cfg          *models.Config
	policyRepo   payment.PolicyRepo
	activityRepo payment.ActivityRepo
	executorGW   payment.ExecutorGW
	eventsGW     payment.EventsGW
	hub          *feed.Hub

	mu     sync.Mutex
	active *models.Transaction
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	policyRepo payment.PolicyRepo,
	activityRepo payment.ActivityRepo,
	executorGW payment.ExecutorGW,
	eventsGW payment.EventsGW,
	hub *feed.Hub,
) *PaymentUC {
	if hub == nil {
		hub = feed.NewHub(cfg.Feed.BufferSize)
	}
	return &PaymentUC{
		cfg:          cfg,
		policyRepo:   policyRepo,
		activityRepo: activityRepo,
		executorGW:   executorGW,
		eventsGW:     eventsGW,
		hub:          hub,
	}
}
