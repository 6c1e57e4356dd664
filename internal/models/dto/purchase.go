package dto

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bancotranquilo/compras-service/internal/models"
)

var (
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
)

// PurchaseRequest is the inbound payload for purchase submission.
type PurchaseRequest struct {
	CardNumber    string          `json:"numeroCartao" binding:"required"`
	CVV           string          `json:"cvv" binding:"required"`
	Expiry        string          `json:"dataValidade" binding:"required"`
	Amount        decimal.Decimal `json:"valor"`
	CustomerEmail string          `json:"emailCliente" binding:"required,email"`
	CustomerName  string          `json:"nomeCliente" binding:"required"`
}

func (p *PurchaseRequest) Sanitize() {
	p.CardNumber = strings.TrimSpace(p.CardNumber)
	p.CVV = strings.TrimSpace(p.CVV)
	p.Expiry = strings.TrimSpace(p.Expiry)
	p.CustomerEmail = strings.TrimSpace(p.CustomerEmail)
	p.CustomerName = strings.TrimSpace(p.CustomerName)
}

func (p *PurchaseRequest) Validate() error {
	if !digitsPattern.MatchString(p.CardNumber) || len(p.CardNumber) < 13 || len(p.CardNumber) > 19 {
		return fmt.Errorf("card number must have between 13 and 19 digits")
	}
	if !digitsPattern.MatchString(p.CVV) || len(p.CVV) < 3 || len(p.CVV) > 4 {
		return fmt.Errorf("cvv must have 3 or 4 digits")
	}
	if !expiryPattern.MatchString(p.Expiry) {
		return fmt.Errorf("expiry date must be in MM/YY format")
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	if p.CustomerName == "" {
		return fmt.Errorf("customer name is required")
	}
	return nil
}

func (p *PurchaseRequest) ToEntity() *models.Purchase {
	return &models.Purchase{
		CardNumber:    p.CardNumber,
		CVV:           p.CVV,
		Expiry:        p.Expiry,
		Amount:        p.Amount,
		CustomerEmail: p.CustomerEmail,
		CustomerName:  p.CustomerName,
		Status:        models.StatusPending,
	}
}

// PurchaseSummary is the outbound view of a purchase. Message is derived
// from the purchase state, never stored.
type PurchaseSummary struct {
	ID          uint                  `json:"id"`
	Status      models.PurchaseStatus `json:"status"`
	Message     string                `json:"mensagem"`
	CreatedAt   time.Time             `json:"dataCriacao"`
	ConfirmedAt *time.Time            `json:"dataConfirmacao,omitempty"`
}
