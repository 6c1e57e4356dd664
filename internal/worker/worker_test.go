package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bancotranquilo/compras-service/internal/models"
	"github.com/bancotranquilo/compras-service/internal/worker"
	"github.com/bancotranquilo/compras-service/internal/worker/mocks"
)

func testRequest() models.AuthorizationRequest {
	return models.AuthorizationRequest{
		PurchaseID:    42,
		CardNumber:    "4111111111111111",
		CVV:           "123",
		Expiry:        "12/27",
		Amount:        decimal.RequireFromString("150.00"),
		CustomerEmail: "cliente@example.com",
		CustomerName:  "Maria Silva",
	}
}

func TestProcess_PublishesExactlyOneOutcome(t *testing.T) {
	mockAuthorizer := mocks.NewMockAuthorizer(t)
	mockPublisher := mocks.NewMockPublisher(t)
	w := worker.NewTransactionWorker(mockAuthorizer, mockPublisher)

	ctx := context.Background()
	request := testRequest()
	raw, err := json.Marshal(request)
	assert.NoError(t, err)

	outcome := models.AuthorizationOutcome{
		PurchaseID:      42,
		Success:         true,
		Message:         "Transação aprovada com sucesso",
		TransactionCode: "TXN123",
	}

	mockAuthorizer.EXPECT().
		Authorize(ctx, request).
		Return(outcome).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.TransactionResponseTopic, outcome).
		Return(nil).
		Once()

	err = w.Process(ctx, raw)

	assert.NoError(t, err)
	mockAuthorizer.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProcess_DeclinedOutcomeIsStillPublished(t *testing.T) {
	mockAuthorizer := mocks.NewMockAuthorizer(t)
	mockPublisher := mocks.NewMockPublisher(t)
	w := worker.NewTransactionWorker(mockAuthorizer, mockPublisher)

	ctx := context.Background()
	request := testRequest()
	raw, err := json.Marshal(request)
	assert.NoError(t, err)

	outcome := models.AuthorizationOutcome{
		PurchaseID: 42,
		Success:    false,
		Message:    "Transação rejeitada: Saldo insuficiente ou cartão inválido",
	}

	mockAuthorizer.EXPECT().
		Authorize(ctx, request).
		Return(outcome).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.TransactionResponseTopic, outcome).
		Return(nil).
		Once()

	err = w.Process(ctx, raw)

	assert.NoError(t, err)
}

func TestProcess_MalformedRequest(t *testing.T) {
	mockAuthorizer := mocks.NewMockAuthorizer(t)
	mockPublisher := mocks.NewMockPublisher(t)
	w := worker.NewTransactionWorker(mockAuthorizer, mockPublisher)

	err := w.Process(context.Background(), []byte(`{"compraId":`))

	assert.Error(t, err)
	mockAuthorizer.AssertNotCalled(t, "Authorize", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_PanicBecomesFailureOutcome(t *testing.T) {
	mockAuthorizer := mocks.NewMockAuthorizer(t)
	mockPublisher := mocks.NewMockPublisher(t)
	w := worker.NewTransactionWorker(mockAuthorizer, mockPublisher)

	ctx := context.Background()
	request := testRequest()
	raw, err := json.Marshal(request)
	assert.NoError(t, err)

	mockAuthorizer.EXPECT().
		Authorize(ctx, request).
		Panic("authorization client crashed").
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.TransactionResponseTopic, mock.MatchedBy(func(outcome models.AuthorizationOutcome) bool {
			return outcome.PurchaseID == 42 &&
				!outcome.Success &&
				strings.Contains(outcome.Message, "authorization client crashed")
		})).
		Return(nil).
		Once()

	err = w.Process(ctx, raw)

	assert.NoError(t, err)
	mockPublisher.AssertExpectations(t)
}

func TestProcess_PublishError(t *testing.T) {
	mockAuthorizer := mocks.NewMockAuthorizer(t)
	mockPublisher := mocks.NewMockPublisher(t)
	w := worker.NewTransactionWorker(mockAuthorizer, mockPublisher)

	ctx := context.Background()
	request := testRequest()
	raw, err := json.Marshal(request)
	assert.NoError(t, err)

	outcome := models.AuthorizationOutcome{PurchaseID: 42, Success: true}

	mockAuthorizer.EXPECT().
		Authorize(ctx, request).
		Return(outcome).
		Once()

	expectedError := errors.New("kafka publish error")

	mockPublisher.EXPECT().
		Publish(ctx, models.TransactionResponseTopic, outcome).
		Return(expectedError).
		Once()

	err = w.Process(ctx, raw)

	assert.Error(t, err)
	assert.ErrorIs(t, err, expectedError)
}
