package db

import (
	"fmt"

	"github.com/kedeea/kedeea-consent-api/src/models"
	"gorm.io/gorm"
)

// Migrate creates the participants and consents tables if they are missing.
// Running it against an up to date schema changes nothing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.ParticipantModel{}, &models.ConsentModel{}); err != nil {
		return fmt.Errorf("auto-migrating consent schema: %w", err)
	}
	return nil
}
