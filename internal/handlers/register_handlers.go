package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/rah7202/Dino-Wallet-Service/internal/core/ports/services"
)

// RegisterRoutes wires every route this service exposes onto r, dispatching
// to the service container's facades.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	registerAssetRoutes(v1, services.Transfer)
	registerWalletRoutes(v1, services.Transfer, services.Transfer)
	registerTransferRoutes(v1, services.Transfer)
}
