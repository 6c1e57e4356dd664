package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bancotranquilo/compras-service/internal/handlers"
)

func (a *App) RegisterRoutes(h *handlers.PurchaseHandler) {
	api := a.Router.Group("/api/compras")
	api.POST("", h.CreatePurchase)
	api.GET("", h.ListPurchases)
	api.GET("/:id", h.GetPurchase)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
