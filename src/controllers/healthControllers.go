package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/kedeea/kedeea-consent-api/src/services"
)

type HealthController struct {
	store services.ConsentStore
}

func NewHealthController(store services.ConsentStore) *HealthController {
	return &HealthController{store: store}
}

// GetHealth reports whether the store answers a ping
func (c *HealthController) GetHealth(ctx *gin.Context) {
	if err := c.store.Ping(ctx.Request.Context()); err != nil {
		log.WithError(err).Warn("health check failed")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
