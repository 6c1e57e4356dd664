package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bancotranquilo/compras-service/internal/handlers"
	"github.com/bancotranquilo/compras-service/internal/handlers/mocks"
	"github.com/bancotranquilo/compras-service/internal/models"
	"github.com/bancotranquilo/compras-service/internal/models/dto"
)

func newRouter(h *handlers.PurchaseHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/compras")
	api.POST("", h.CreatePurchase)
	api.GET("", h.ListPurchases)
	api.GET("/:id", h.GetPurchase)
	return router
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"numeroCartao": "4111111111111111",
		"cvv":          "123",
		"dataValidade": "12/27",
		"valor":        150.00,
		"emailCliente": "cliente@example.com",
		"nomeCliente":  "Maria Silva",
	}
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreatePurchase_Success(t *testing.T) {
	mockService := mocks.NewMockPurchaseService(t)
	mockProcessor := mocks.NewMockTransactionProcessor(t)
	h := handlers.NewPurchaseHandler(mockService, mockProcessor)
	router := newRouter(h)

	createdAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	summary := &dto.PurchaseSummary{
		ID:        42,
		Status:    models.StatusPending,
		Message:   "Compra criada e em processamento",
		CreatedAt: createdAt,
	}

	mockService.EXPECT().
		Submit(mock.Anything, mock.MatchedBy(func(req *dto.PurchaseRequest) bool {
			return req.CardNumber == "4111111111111111" && req.CustomerName == "Maria Silva"
		})).
		Return(summary, nil).
		Once()

	rec := postJSON(router, "/api/compras", validBody())

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got dto.PurchaseSummary
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint(42), got.ID)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, "Compra criada e em processamento", got.Message)
	mockService.AssertExpectations(t)
}

func TestCreatePurchase_InvalidBody(t *testing.T) {
	mockService := mocks.NewMockPurchaseService(t)
	mockProcessor := mocks.NewMockTransactionProcessor(t)
	h := handlers.NewPurchaseHandler(mockService, mockProcessor)
	router := newRouter(h)

	body := validBody()
	delete(body, "numeroCartao")

	rec := postJSON(router, "/api/compras", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestCreatePurchase_ValidationFailure(t *testing.T) {
	mockService := mocks.NewMockPurchaseService(t)
	mockProcessor := mocks.NewMockTransactionProcessor(t)
	h := handlers.NewPurchaseHandler(mockService, mockProcessor)
	router := newRouter(h)

	body := validBody()
	body["numeroCartao"] = "1234"

	rec := postJSON(router, "/api/compras", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "card number")
	mockService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestCreatePurchase_ServiceError(t *testing.T) {
	mockService := mocks.NewMockPurchaseService(t)
	mockProcessor := mocks.NewMockTransactionProcessor(t)
	h := handlers.NewPurchaseHandler(mockService, mockProcessor)
	router := newRouter(h)

	mockService.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("*dto.PurchaseRequest")).
		Return(nil, errors.New("kafka publish error")).
		Once()

	rec := postJSON(router, "/api/compras", validBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), "kafka")
}

func TestGetPurchase_Success(t *testing.T) {
	mockService := mocks.NewMockPurchaseService(t)
	mockProcessor := mocks.NewMockTransactionProcessor(t)
	h := handlers.NewPurchaseHandler(mockService, mockProcessor)
	router := newRouter(h)

	confirmedAt := time.Date(2025, 3, 14, 10, 35, 0, 0, time.UTC)
	summary := &dto.PurchaseSummary{
		ID:          42,
		Status:      models.StatusConfirmed,
		Message:     "Compra confirmada",
		CreatedAt:   confirmedAt.Add(-5 * time.Minute),
		ConfirmedAt: &confirmedAt,
	}

	mockService.EXPECT().
		GetByID(mock.Anything, uint(42)).
		Return(summary, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/api/compras/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got dto.PurchaseSummary
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.StatusConfirmed, got.Status)
	assert.Equal(t, "Compra confirmada", got.Message)
	assert.NotNil(t, got.ConfirmedAt)
}

func TestGetPurchase_NotFound(t *testing.T) {
	mockService := mocks.NewMockPurchaseService(t)
	mockProcessor := mocks.NewMockTransactionProcessor(t)
	h := handlers.NewPurchaseHandler(mockService, mockProcessor)
	router := newRouter(h)

	mockService.EXPECT().
		GetByID(mock.Anything, uint(9999)).
		Return(nil, models.ErrNotFound).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/api/compras/9999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPurchase_InvalidID(t *testing.T) {
	mockService := mocks.NewMockPurchaseService(t)
	mockProcessor := mocks.NewMockTransactionProcessor(t)
	h := handlers.NewPurchaseHandler(mockService, mockProcessor)
	router := newRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/compras/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestListPurchases(t *testing.T) {
	mockService := mocks.NewMockPurchaseService(t)
	mockProcessor := mocks.NewMockTransactionProcessor(t)
	h := handlers.NewPurchaseHandler(mockService, mockProcessor)
	router := newRouter(h)

	summaries := []dto.PurchaseSummary{
		{ID: 1, Status: models.StatusPending, Message: "Compra em processamento"},
		{ID: 2, Status: models.StatusRejected, Message: "Saldo insuficiente"},
	}

	mockService.EXPECT().
		ListAll(mock.Anything).
		Return(summaries, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/api/compras", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []dto.PurchaseSummary
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "Saldo insuficiente", got[1].Message)
}

func TestHandleEvents_RequestTopicGoesToProcessor(t *testing.T) {
	mockService := mocks.NewMockPurchaseService(t)
	mockProcessor := mocks.NewMockTransactionProcessor(t)
	h := handlers.NewPurchaseHandler(mockService, mockProcessor)

	ctx := context.Background()
	payload := []byte(`{"compraId":42}`)

	mockProcessor.EXPECT().
		Process(ctx, payload).
		Return(nil).
		Once()

	err := h.HandleEvents(ctx, models.TransactionRequestTopic, payload)

	assert.NoError(t, err)
	mockProcessor.AssertExpectations(t)
	mockService.AssertNotCalled(t, "HandleOutcome", mock.Anything, mock.Anything)
}

func TestHandleEvents_ResponseTopicGoesToService(t *testing.T) {
	mockService := mocks.NewMockPurchaseService(t)
	mockProcessor := mocks.NewMockTransactionProcessor(t)
	h := handlers.NewPurchaseHandler(mockService, mockProcessor)

	ctx := context.Background()
	outcome := models.AuthorizationOutcome{
		PurchaseID:      42,
		Success:         true,
		Message:         "Transação aprovada com sucesso",
		TransactionCode: "TXN123",
	}
	payload, err := json.Marshal(outcome)
	assert.NoError(t, err)

	mockService.EXPECT().
		HandleOutcome(ctx, outcome).
		Return(nil).
		Once()

	err = h.HandleEvents(ctx, models.TransactionResponseTopic, payload)

	assert.NoError(t, err)
	mockService.AssertExpectations(t)
	mockProcessor.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHandleEvents_MalformedOutcome(t *testing.T) {
	mockService := mocks.NewMockPurchaseService(t)
	mockProcessor := mocks.NewMockTransactionProcessor(t)
	h := handlers.NewPurchaseHandler(mockService, mockProcessor)

	err := h.HandleEvents(context.Background(), models.TransactionResponseTopic, []byte(`{"compraId":`))

	assert.Error(t, err)
	mockService.AssertNotCalled(t, "HandleOutcome", mock.Anything, mock.Anything)
}

func TestHandleEvents_UnknownTopic(t *testing.T) {
	mockService := mocks.NewMockPurchaseService(t)
	mockProcessor := mocks.NewMockTransactionProcessor(t)
	h := handlers.NewPurchaseHandler(mockService, mockProcessor)

	err := h.HandleEvents(context.Background(), "transacoes.desconhecido", []byte(`{}`))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "topic not allowed")
}
