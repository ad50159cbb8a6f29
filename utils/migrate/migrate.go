package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/kedeea/kedeea-consent-api/src/config"
	"github.com/kedeea/kedeea-consent-api/src/services"
)

// Creates the participants and consents tables for the configured driver and exits,
// so a deploy job can prepare the database before the API starts.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store, err := services.NewConsentStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to bootstrap %s schema: %v", cfg.DBDriver, err)
	}
	defer store.Close()

	log.WithField("driver", cfg.DBDriver).Info("Schema is up to date")
}
