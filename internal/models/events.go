package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionRequestTopic  = "transacoes.requisicoes"
	TransactionResponseTopic = "transacoes.respostas"
	TransactionDLQTopic      = "transacoes.dlq"
)

// AuthorizationRequest is the snapshot of a purchase carried on the request
// topic. Immutable once published.
type AuthorizationRequest struct {
	PurchaseID    uint            `json:"compraId"`
	CardNumber    string          `json:"numeroCartao"`
	CVV           string          `json:"cvv"`
	Expiry        string          `json:"dataValidade"`
	Amount        decimal.Decimal `json:"valor"`
	CustomerEmail string          `json:"emailCliente"`
	CustomerName  string          `json:"nomeCliente"`
}

// AuthorizationOutcome is the terminal result of an authorization attempt,
// carried on the response topic. TransactionCode is present only on success.
type AuthorizationOutcome struct {
	PurchaseID      uint   `json:"compraId"`
	Success         bool   `json:"sucesso"`
	Message         string `json:"mensagem"`
	TransactionCode string `json:"codigoTransacao,omitempty"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
