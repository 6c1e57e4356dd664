package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bancotranquilo/compras-service/internal/models"
)

func TestPurchaseStatus_IsValid(t *testing.T) {
	assert.True(t, models.StatusPending.IsValid())
	assert.True(t, models.StatusConfirmed.IsValid())
	assert.True(t, models.StatusRejected.IsValid())
	assert.False(t, models.PurchaseStatus("CANCELLED").IsValid())
}

func TestPurchaseStatus_IsTerminal(t *testing.T) {
	assert.False(t, models.StatusPending.IsTerminal())
	assert.True(t, models.StatusConfirmed.IsTerminal())
	assert.True(t, models.StatusRejected.IsTerminal())
}
