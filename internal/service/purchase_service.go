package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bancotranquilo/compras-service/internal/clock"
	"github.com/bancotranquilo/compras-service/internal/metrics"
	"github.com/bancotranquilo/compras-service/internal/models"
	"github.com/bancotranquilo/compras-service/internal/models/dto"
)

const (
	messageCreated    = "Compra criada e em processamento"
	messageConfirmed  = "Compra confirmada"
	messageProcessing = "Compra em processamento"
)

// PurchaseRepo defines the interface for purchase data persistence
// operations. UpdateIf is a conditional update returning the number of rows
// changed, used as a compare-and-set on the status column.
type PurchaseRepo interface {
	Create(ctx context.Context, purchase *models.Purchase) error
	GetByID(ctx context.Context, id uint) (*models.Purchase, error)
	GetAll(ctx context.Context) (*[]models.Purchase, error)
	Update(ctx context.Context, purchase *models.Purchase, id uint) error
	UpdateIf(ctx context.Context, purchase *models.Purchase, id uint, column string, expected interface{}) (int64, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Notifier sends the confirmation message to the customer. Failures are
// non-fatal to the workflow.
type Notifier interface {
	SendConfirmation(purchase *models.Purchase) error
}

// PurchaseService owns the purchase state machine. It persists new purchases
// as PENDING and publishes the authorization request; when the outcome comes
// back it applies the one-way transition to CONFIRMED or REJECTED and, on
// confirmation, triggers the customer notification.
type PurchaseService struct {
	Repo      PurchaseRepo
	Publisher Publisher
	Notifier  Notifier
	Clock     clock.Clock
}

func NewPurchaseService(repo PurchaseRepo, publisher Publisher, notifier Notifier, clk clock.Clock) *PurchaseService {
	return &PurchaseService{
		Repo:      repo,
		Publisher: publisher,
		Notifier:  notifier,
		Clock:     clk,
	}
}

// Submit persists a new PENDING purchase, publishes its authorization
// request and returns a summary without waiting for the outcome. Input
// validation happens at the HTTP boundary, not here.
func (s *PurchaseService) Submit(ctx context.Context, request *dto.PurchaseRequest) (*dto.PurchaseSummary, error) {
	purchase := request.ToEntity()
	purchase.CreatedAt = s.Clock.Now()

	if err := s.Repo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("error creating purchase: %w", err)
	}

	logrus.Infof("purchase created with ID: %d", purchase.ID)

	event := models.AuthorizationRequest{
		PurchaseID:    purchase.ID,
		CardNumber:    purchase.CardNumber,
		CVV:           purchase.CVV,
		Expiry:        purchase.Expiry,
		Amount:        purchase.Amount,
		CustomerEmail: purchase.CustomerEmail,
		CustomerName:  purchase.CustomerName,
	}

	if err := s.Publisher.Publish(ctx, models.TransactionRequestTopic, event); err != nil {
		return nil, fmt.Errorf("error publishing authorization request: %w", err)
	}

	metrics.PurchasesCreated.Inc()

	return &dto.PurchaseSummary{
		ID:        purchase.ID,
		Status:    purchase.Status,
		Message:   messageCreated,
		CreatedAt: purchase.CreatedAt,
	}, nil
}

// HandleOutcome applies a terminal authorization outcome to the purchase it
// belongs to. It is idempotent: outcomes for unknown purchases are dropped,
// and a purchase already in a terminal state is left untouched without
// re-triggering the notification. The terminal write is a compare-and-set
// on status, so a racing duplicate delivery cannot apply it twice.
func (s *PurchaseService) HandleOutcome(ctx context.Context, outcome models.AuthorizationOutcome) error {
	purchase, err := s.Repo.GetByID(ctx, outcome.PurchaseID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			logrus.Warnf("outcome for unknown purchase %d dropped", outcome.PurchaseID)
			return nil
		}
		return fmt.Errorf("error fetching purchase %d: %w", outcome.PurchaseID, err)
	}

	if purchase.Status.IsTerminal() {
		logrus.Infof("purchase %d already %s, ignoring duplicate outcome", purchase.ID, purchase.Status)
		return nil
	}

	if outcome.Success {
		return s.confirm(ctx, purchase)
	}
	return s.reject(ctx, purchase, outcome.Message)
}

func (s *PurchaseService) confirm(ctx context.Context, purchase *models.Purchase) error {
	now := s.Clock.Now()
	purchase.Status = models.StatusConfirmed
	purchase.ConfirmedAt = &now

	rows, err := s.Repo.UpdateIf(ctx, purchase, purchase.ID, "status", models.StatusPending)
	if err != nil {
		return fmt.Errorf("error confirming purchase %d: %w", purchase.ID, err)
	}
	if rows == 0 {
		logrus.Infof("purchase %d was transitioned concurrently, ignoring outcome", purchase.ID)
		return nil
	}

	logrus.Infof("purchase %d confirmed, sending confirmation email", purchase.ID)

	if err := s.Notifier.SendConfirmation(purchase); err != nil {
		logrus.Errorf("error sending confirmation email for purchase %d: %s", purchase.ID, err.Error())
		metrics.ConfirmationEmails.WithLabelValues("failed").Inc()
		return nil
	}
	metrics.ConfirmationEmails.WithLabelValues("sent").Inc()

	return nil
}

func (s *PurchaseService) reject(ctx context.Context, purchase *models.Purchase, message string) error {
	purchase.Status = models.StatusRejected
	purchase.ErrorMessage = message

	rows, err := s.Repo.UpdateIf(ctx, purchase, purchase.ID, "status", models.StatusPending)
	if err != nil {
		return fmt.Errorf("error rejecting purchase %d: %w", purchase.ID, err)
	}
	if rows == 0 {
		logrus.Infof("purchase %d was transitioned concurrently, ignoring outcome", purchase.ID)
		return nil
	}

	logrus.Warnf("purchase %d rejected: %s", purchase.ID, message)
	return nil
}

func (s *PurchaseService) GetByID(ctx context.Context, id uint) (*dto.PurchaseSummary, error) {
	purchase, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSummary(purchase), nil
}

func (s *PurchaseService) ListAll(ctx context.Context) ([]dto.PurchaseSummary, error) {
	purchases, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing purchases: %w", err)
	}

	summaries := make([]dto.PurchaseSummary, 0, len(*purchases))
	for i := range *purchases {
		summaries = append(summaries, *toSummary(&(*purchases)[i]))
	}
	return summaries, nil
}

func toSummary(purchase *models.Purchase) *dto.PurchaseSummary {
	message := messageProcessing
	if purchase.Status == models.StatusConfirmed {
		message = messageConfirmed
	} else if purchase.ErrorMessage != "" {
		message = purchase.ErrorMessage
	}

	return &dto.PurchaseSummary{
		ID:          purchase.ID,
		Status:      purchase.Status,
		Message:     message,
		CreatedAt:   purchase.CreatedAt,
		ConfirmedAt: purchase.ConfirmedAt,
	}
}
