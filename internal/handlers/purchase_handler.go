package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bancotranquilo/compras-service/internal/models"
	"github.com/bancotranquilo/compras-service/internal/models/dto"
)

type PurchaseService interface {
	Submit(ctx context.Context, request *dto.PurchaseRequest) (*dto.PurchaseSummary, error)
	HandleOutcome(ctx context.Context, outcome models.AuthorizationOutcome) error
	GetByID(ctx context.Context, id uint) (*dto.PurchaseSummary, error)
	ListAll(ctx context.Context) ([]dto.PurchaseSummary, error)
}

type TransactionProcessor interface {
	Process(ctx context.Context, raw []byte) error
}

type PurchaseHandler struct {
	Service   PurchaseService
	Processor TransactionProcessor
}

func NewPurchaseHandler(s PurchaseService, p TransactionProcessor) *PurchaseHandler {
	return &PurchaseHandler{
		Service:   s,
		Processor: p,
	}
}

// POST /api/compras
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var request dto.PurchaseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	request.Sanitize()
	if err := request.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.Service.Submit(c.Request.Context(), &request)
	if err != nil {
		logrus.Errorf("Error creating purchase: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// GET /api/compras/:id
func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid purchase id"})
		return
	}

	summary, err := h.Service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "purchase not found"})
			return
		}
		logrus.Errorf("Error fetching purchase %d: %s", id, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GET /api/compras
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	summaries, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		logrus.Errorf("Error listing purchases: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// HandleEvents dispatches a consumed broker message to the component that
// owns its topic: authorization requests go to the transaction worker,
// authorization outcomes to the purchase state machine.
func (h *PurchaseHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.TransactionRequestTopic:
		return h.Processor.Process(ctx, value)
	case models.TransactionResponseTopic:
		var outcome models.AuthorizationOutcome
		if err := json.Unmarshal(value, &outcome); err != nil {
			logrus.Errorf("Error parsing authorization outcome %s", err.Error())
			return fmt.Errorf("error parsing authorization outcome %w", err)
		}
		return h.Service.HandleOutcome(ctx, outcome)
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}
}
