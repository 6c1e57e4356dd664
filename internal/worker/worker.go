package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bancotranquilo/compras-service/internal/metrics"
	"github.com/bancotranquilo/compras-service/internal/models"
)

// Authorizer resolves an authorization request into an outcome without
// ever failing.
type Authorizer interface {
	Authorize(ctx context.Context, request models.AuthorizationRequest) models.AuthorizationOutcome
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// TransactionWorker consumes authorization requests and publishes exactly
// one outcome per request, converting internal failures into declined
// outcomes instead of losing the message.
type TransactionWorker struct {
	Authorizer Authorizer
	Publisher  Publisher
}

func NewTransactionWorker(a Authorizer, p Publisher) *TransactionWorker {
	return &TransactionWorker{
		Authorizer: a,
		Publisher:  p,
	}
}

// Process handles one delivered request message. A malformed payload is
// returned as an error so the subscriber retries and dead-letters it; a
// publish failure likewise, since retrying re-runs authorization but still
// produces a single response on the topic.
func (w *TransactionWorker) Process(ctx context.Context, raw []byte) error {
	var request models.AuthorizationRequest
	if err := json.Unmarshal(raw, &request); err != nil {
		logrus.Errorf("Error parsing authorization request: %s", err.Error())
		return fmt.Errorf("error parsing authorization request %w", err)
	}

	logrus.Infof("processing authorization request for purchase %d", request.PurchaseID)

	outcome := w.authorize(ctx, request)

	statusLabel := "declined"
	if outcome.Success {
		statusLabel = "approved"
	}
	metrics.Authorizations.WithLabelValues(statusLabel).Inc()

	if err := w.Publisher.Publish(ctx, models.TransactionResponseTopic, outcome); err != nil {
		return fmt.Errorf("error publishing authorization outcome %w", err)
	}

	return nil
}

func (w *TransactionWorker) authorize(ctx context.Context, request models.AuthorizationRequest) (outcome models.AuthorizationOutcome) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("panic authorizing purchase %d: %v", request.PurchaseID, r)
			outcome = models.AuthorizationOutcome{
				PurchaseID: request.PurchaseID,
				Success:    false,
				Message:    fmt.Sprintf("Erro ao processar transação: %v", r),
			}
		}
	}()

	return w.Authorizer.Authorize(ctx, request)
}
