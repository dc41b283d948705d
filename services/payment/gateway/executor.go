package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/payguard/payguard/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

type transferRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Recipient string          `json:"recipient"`
}

type transferResponse struct {
	TxReference string `json:"tx_reference"`
	Status      string `json:"status"`
}

// Execute submits the transfer to the execution service and returns the
// transaction reference. The caller's context deadline bounds the call.
func (g *ExecutorGW) Execute(ctx context.Context, amount decimal.Decimal, currency, recipient string) (string, error) {
	body, err := json.Marshal(transferRequest{
		Amount:    amount,
		Currency:  currency,
		Recipient: recipient,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal transfer request: %w", err)
	}

	var result transferResponse
	err = g.breaker.Execute(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			g.cfg.BaseURL+"/v1/transfers", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to create transfer request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if g.cfg.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
		}

		resp, err := g.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("transfer request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return fmt.Errorf("executor returned status %d: %s", resp.StatusCode, string(respBody))
		}

		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("failed to decode transfer response: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if result.TxReference == "" {
		return "", fmt.Errorf("executor returned empty transaction reference")
	}

	logger.Info("Transfer executed",
		logger.String("tx_reference", result.TxReference),
		logger.String("status", result.Status))
	return result.TxReference, nil
}
