package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutorGW_Execute_Success(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/transfers", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req transferRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Amount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, "USDC", req.Currency)
		assert.Equal(t, "payments@stripe.com", req.Recipient)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transferResponse{
			TxReference: "tx_abc123",
			Status:      "settled",
		})
	}))
	defer server.Close()

	gw := NewExecutorGW(models.ExecutorConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 5,
	})

	// Act
	ref, err := gw.Execute(context.Background(), decimal.NewFromInt(100), "USDC", "payments@stripe.com")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "tx_abc123", ref)
}

func TestExecutorGW_Execute_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"settlement network down"}`))
	}))
	defer server.Close()

	gw := NewExecutorGW(models.ExecutorConfig{BaseURL: server.URL, Timeout: 5})

	_, err := gw.Execute(context.Background(), decimal.NewFromInt(100), "USDC", "payments@stripe.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestExecutorGW_Execute_EmptyReference(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"pending"}`))
	}))
	defer server.Close()

	gw := NewExecutorGW(models.ExecutorConfig{BaseURL: server.URL, Timeout: 5})

	_, err := gw.Execute(context.Background(), decimal.NewFromInt(100), "USDC", "payments@stripe.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty transaction reference")
}

func TestExecutorGW_Execute_ContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	gw := NewExecutorGW(models.ExecutorConfig{BaseURL: server.URL, Timeout: 5})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := gw.Execute(ctx, decimal.NewFromInt(100), "USDC", "payments@stripe.com")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
