package services

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kedeea/kedeea-consent-api/src/models"
)

const insertParticipantSQL = `
INSERT INTO participants
  (first_name, last_name, guardian_name, address_line, city, postal_code,
   phone, email, sex, age, medical_history)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

const insertConsentSQL = `
INSERT INTO consents
  (participant_id, physio, ergo, logo, diet, gait_analysis, counseling,
   video_capture, data_processing, data_transfer_outside_eu, biomedical_capture, signed_at)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

type PostgresConsentService struct {
	pool *pgxpool.Pool
}

// NewPostgresConsentService creates a ConsentStore backed by a postgres pool
func NewPostgresConsentService(pool *pgxpool.Pool) *PostgresConsentService {
	return &PostgresConsentService{pool: pool}
}

// Submit inserts the participant and its consent inside one transaction
func (s *PostgresConsentService) Submit(ctx context.Context, participant *models.ParticipantModel, consent *models.ConsentModel) (string, error) {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		// ids are the bigint identity created by db.Migrate; a pre-existing uuid-keyed participants table is not supported
		err := tx.QueryRow(ctx, insertParticipantSQL,
			participant.FirstName,
			participant.LastName,
			participant.GuardianName,
			participant.AddressLine,
			participant.City,
			participant.PostalCode,
			participant.Phone,
			participant.Email,
			participant.Sex,
			participant.Age,
			participant.MedicalHistory,
		).Scan(&participant.Id)
		if err != nil {
			return err
		}

		consent.ParticipantId = participant.Id
		return tx.QueryRow(ctx, insertConsentSQL,
			consent.ParticipantId,
			consent.Physio,
			consent.Ergo,
			consent.Logo,
			consent.Diet,
			consent.GaitAnalysis,
			consent.Counseling,
			consent.VideoCapture,
			consent.DataProcessing,
			consent.DataTransferOutsideEU,
			consent.BiomedicalCapture,
			consent.SignedAt.String(),
		).Scan(&consent.Id)
	})
	if err != nil {
		return "", persistenceError("postgres submit", err)
	}

	return strconv.FormatInt(participant.Id, 10), nil
}

// Ping checks that a pooled connection is usable
func (s *PostgresConsentService) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases every pooled connection
func (s *PostgresConsentService) Close() error {
	s.pool.Close()
	return nil
}
