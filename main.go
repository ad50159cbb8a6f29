package main

import (
	"context"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/kedeea/kedeea-consent-api/src/config"
	"github.com/kedeea/kedeea-consent-api/src/routes"
	"github.com/kedeea/kedeea-consent-api/src/services"
)

func main() {

	// Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error parsing LOG_LEVEL %q: %v", cfg.LogLevel, err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.JSONFormatter{})

	if cfg.UsesDefaultAccessCode() {
		log.Warn("ACCESS_CODE is still the default 0000, set ACCESS_CODE or ACCESS_CODE_HASH before going live")
	}
	if cfg.Debug {
		log.Warn("DEBUG is on, store errors will be returned to clients")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Store connection and schema bootstrap
	store, err := services.NewConsentStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Error opening %s store: %v", cfg.DBDriver, err)
	}
	defer store.Close()

	guard, err := services.NewAccessGuard(cfg.AccessCode, cfg.AccessCodeHash)
	if err != nil {
		log.Fatalf("Error configuring access code: %v", err)
	}

	// Gin router setup
	router := routes.NewRouter(cfg, store, guard)

	// Server run
	log.WithFields(log.Fields{"host": cfg.ServerHost, "driver": cfg.DBDriver}).Info("Server is starting")
	if err := router.Run(cfg.ServerHost); err != nil {
		log.Fatalf("Error starting server on %s: %v", cfg.ServerHost, err)
	}
}
