package services

import (
	"context"

	"github.com/kedeea/kedeea-consent-api/src/models"
)

//go:generate mockgen -destination=mocks/consent_store.go -package=mocks github.com/kedeea/kedeea-consent-api/src/services ConsentStore

// ConsentStore persists one participant and its consent as a single unit.
type ConsentStore interface {
	// Submit inserts participant, then consent referencing it, in one transaction
	// and returns the generated participant id. On error neither row is kept.
	Submit(ctx context.Context, participant *models.ParticipantModel, consent *models.ConsentModel) (string, error)
	Ping(ctx context.Context) error
	Close() error
}

// PersistenceError is returned for any store fault during Submit.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}
