package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kedeea/kedeea-consent-api/src/controllers"
	"github.com/kedeea/kedeea-consent-api/src/services"
)

func SetupHealthRoutes(router *gin.Engine, store services.ConsentStore) {
	healthController := controllers.NewHealthController(store)

	router.GET("/healthz", healthController.GetHealth)
}
