package authorizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bancotranquilo/compras-service/internal/clock"
	"github.com/bancotranquilo/compras-service/internal/models"
)

const (
	approvedMessage = "Transação aprovada com sucesso"
	declinedMessage = "Transação rejeitada: Saldo insuficiente ou cartão inválido"
)

// Client authorizes purchases against the Banco Tranquilo provider API.
// On transport-level failure it falls back to a simulated outcome when a
// simulator is configured; with no simulator the transport error becomes a
// declined outcome. Authorize never returns an error.
type Client struct {
	httpClient *http.Client
	baseURL    string
	simulator  OutcomeSimulator
	clock      clock.Clock
}

func NewClient(baseURL string, timeout time.Duration, simulator OutcomeSimulator, clk clock.Clock) *Client {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		simulator:  simulator,
		clock:      clk,
	}
}

func (c *Client) Authorize(ctx context.Context, request models.AuthorizationRequest) models.AuthorizationOutcome {
	outcome, err := c.callProvider(ctx, request)
	if err == nil {
		return outcome
	}

	logrus.Warnf("authorization provider unavailable for purchase %d: %v", request.PurchaseID, err)

	if c.simulator == nil {
		return models.AuthorizationOutcome{
			PurchaseID: request.PurchaseID,
			Success:    false,
			Message:    fmt.Sprintf("Erro ao processar transação: %s", err.Error()),
		}
	}

	return c.simulate(request)
}

func (c *Client) callProvider(ctx context.Context, request models.AuthorizationRequest) (models.AuthorizationOutcome, error) {
	var outcome models.AuthorizationOutcome

	body, err := json.Marshal(request)
	if err != nil {
		return outcome, fmt.Errorf("error marshaling authorization request: %w", err)
	}

	url := c.baseURL + "/transacoes/processar"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return outcome, fmt.Errorf("error building provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return outcome, fmt.Errorf("error calling provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return outcome, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		return outcome, fmt.Errorf("error decoding provider response: %w", err)
	}
	if outcome.PurchaseID == 0 {
		return outcome, fmt.Errorf("provider response missing purchase id")
	}

	// Explicit provider declines are propagated as-is; only transport
	// failures reach the simulated fallback.
	return outcome, nil
}

func (c *Client) simulate(request models.AuthorizationRequest) models.AuthorizationOutcome {
	outcome := models.AuthorizationOutcome{PurchaseID: request.PurchaseID}

	if c.simulator.Draw() {
		outcome.Success = true
		outcome.Message = approvedMessage
		outcome.TransactionCode = fmt.Sprintf("TXN%d", c.clock.Now().UnixMilli())
	} else {
		outcome.Success = false
		outcome.Message = declinedMessage
	}

	logrus.Infof("simulated authorization for purchase %d - success: %t", request.PurchaseID, outcome.Success)

	return outcome
}
