package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kedeea/kedeea-consent-api/src/controllers"
	"github.com/kedeea/kedeea-consent-api/src/services"
)

func SetupConsentRoutes(router *gin.Engine, store services.ConsentStore, guard *services.AccessGuard, exposeErrors bool) {
	consentController := controllers.NewConsentController(store, guard, exposeErrors)

	// Public route, gated by the access code in the body
	router.POST("/api/consent", consentController.CreateConsent)
}
