package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kedeea/kedeea-consent-api/src/config"
	"github.com/kedeea/kedeea-consent-api/src/middleware"
	"github.com/kedeea/kedeea-consent-api/src/services"
)

// NewRouter wires middleware and every route of the API.
func NewRouter(cfg config.Config, store services.ConsentStore, guard *services.AccessGuard) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery(), middleware.SetupCORS(cfg.AllowedOrigin))

	SetupConsentRoutes(router, store, guard, cfg.Debug)
	SetupHealthRoutes(router, store)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Kedeea Consent API")
	})

	return router
}
