package gateway

import (
	"net/http"
	"time"

	"github.com/payguard/payguard/internal/pkg/circuitbreaker"
	"github.com/payguard/payguard/internal/pkg/logger"
	"github.com/payguard/payguard/internal/pkg/models"
	natspkg "github.com/payguard/payguard/internal/pkg/nats"
)

// ExecutorGW calls the external transfer execution service over HTTP
type ExecutorGW struct {
	cfg        models.ExecutorConfig
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewExecutorGW creates a new executor gateway
func NewExecutorGW(cfg models.ExecutorConfig) *ExecutorGW {
	return &ExecutorGW{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		breaker: circuitbreaker.New(
			circuitbreaker.DefaultConfig("executor"),
			logger.GetGlobalLogger(),
		),
	}
}

// EventsGW publishes workflow events to NATS
type EventsGW struct {
	producer *natspkg.Producer
}

// NewEventsGW creates a new events gateway
func NewEventsGW(client *natspkg.Client) *EventsGW {
	return &EventsGW{
		producer: natspkg.NewProducer(client),
	}
}
