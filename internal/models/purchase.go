package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseStatus string

const (
	StatusPending   PurchaseStatus = "PENDING"
	StatusConfirmed PurchaseStatus = "CONFIRMED"
	StatusRejected  PurchaseStatus = "REJECTED"
)

// ErrNotFound is returned by repositories when the requested record
// does not exist.
var ErrNotFound = errors.New("record not found")

// Purchase is the persisted record of a card-payment attempt and its
// lifecycle state. Status moves one way: PENDING to CONFIRMED or REJECTED,
// exactly once. ConfirmedAt is set only on CONFIRMED purchases and
// ErrorMessage only on REJECTED ones.
type Purchase struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	CardNumber    string          `json:"numeroCartao" gorm:"not null"`
	CVV           string          `json:"cvv" gorm:"not null"`
	Expiry        string          `json:"dataValidade" gorm:"not null"`
	Amount        decimal.Decimal `json:"valor" gorm:"type:decimal(12,2);not null"`
	CustomerEmail string          `json:"emailCliente" gorm:"not null"`
	CustomerName  string          `json:"nomeCliente" gorm:"not null"`
	Status        PurchaseStatus  `json:"status" gorm:"not null"`
	CreatedAt     time.Time       `json:"dataCriacao"`
	ConfirmedAt   *time.Time      `json:"dataConfirmacao,omitempty"`
	ErrorMessage  string          `json:"mensagemErro,omitempty"`
}

func (s PurchaseStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status transitions are permitted.
func (s PurchaseStatus) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusRejected
}
