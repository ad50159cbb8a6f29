package services

import (
	"context"
	"strconv"

	"github.com/kedeea/kedeea-consent-api/src/models"
	"gorm.io/gorm"
)

type SQLiteConsentService struct {
	db *gorm.DB
}

// NewSQLiteConsentService creates a ConsentStore backed by an embedded sqlite file
func NewSQLiteConsentService(db *gorm.DB) *SQLiteConsentService {
	return &SQLiteConsentService{db: db}
}

// Submit creates the participant, reads back its row id and creates the consent, all in one transaction
func (s *SQLiteConsentService) Submit(ctx context.Context, participant *models.ParticipantModel, consent *models.ConsentModel) (string, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(participant).Error; err != nil {
			return err
		}

		consent.ParticipantId = participant.Id
		return tx.Create(consent).Error
	})
	if err != nil {
		return "", persistenceError("sqlite submit", err)
	}

	return strconv.FormatInt(participant.Id, 10), nil
}

// Ping checks that the database file is still reachable
func (s *SQLiteConsentService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying database handle
func (s *SQLiteConsentService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
