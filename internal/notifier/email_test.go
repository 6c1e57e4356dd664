package notifier_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bancotranquilo/compras-service/internal/models"
	"github.com/bancotranquilo/compras-service/internal/notifier"
)

func TestConfirmationBody(t *testing.T) {
	confirmedAt := time.Date(2025, 3, 14, 10, 35, 12, 0, time.UTC)
	purchase := &models.Purchase{
		ID:            42,
		Amount:        decimal.RequireFromString("150.5"),
		CustomerEmail: "cliente@example.com",
		CustomerName:  "Maria Silva",
		Status:        models.StatusConfirmed,
		ConfirmedAt:   &confirmedAt,
	}

	body := notifier.ConfirmationBody(purchase)

	assert.Contains(t, body, "Olá Maria Silva,")
	assert.Contains(t, body, "ID da Compra: 42")
	assert.Contains(t, body, "Valor: R$ 150.50")
	assert.Contains(t, body, "Data de Confirmação: 14/03/2025 10:35:12")
	assert.Contains(t, body, "Banco Tranquilo")
}

func TestConfirmationBody_NoConfirmationTimestamp(t *testing.T) {
	purchase := &models.Purchase{
		ID:           7,
		Amount:       decimal.RequireFromString("99.90"),
		CustomerName: "João Souza",
	}

	body := notifier.ConfirmationBody(purchase)

	assert.Contains(t, body, "Data de Confirmação: N/A")
}

func TestNewEmailNotifier(t *testing.T) {
	n := notifier.NewEmailNotifier("smtp.example.com", 587, "user", "pass", "nao-responda@bancotranquilo.com")

	assert.NotNil(t, n)
}
