// Package store holds the participant record contract. FindByEmail and
// Create must succeed or report; IncrementPlayCount and SaveAccepted are
// best-effort telemetry-style writes whose callers log failures and move on.
package store

import (
	"errors"
	"log"

	"github.com/delbyte/codeolympics/internal/config"
	"github.com/delbyte/codeolympics/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateEmail reports a create that lost the race against another
	// submission for the same email.
	ErrDuplicateEmail = errors.New("participant with this email already exists")

	// ErrNotConfigured reports that no store backend was configured.
	ErrNotConfigured = errors.New("participant store is not configured")
)

type ParticipantStore interface {
	// FindByEmail returns (nil, nil) when no record exists.
	FindByEmail(email string) (*models.Participant, error)
	Create(p *models.Participant) error
	// IncrementPlayCount is a no-op when the record is absent.
	IncrementPlayCount(email string) error
	// SaveAccepted sets the combo and has_played; no-op when absent.
	SaveAccepted(email string, combo models.AcceptedCombo) error
}

// New selects the store backend at startup: the null store under DEV_BYPASS,
// the unconfigured stub when no database host is set, and Postgres otherwise.
func New(cfg *config.Config, db *gorm.DB) ParticipantStore {
	switch {
	case cfg.DevBypass:
		log.Println("DEV_BYPASS active, participant store disabled")
		return NewNullStore()
	case db == nil:
		log.Println("DB_HOST not set, participant store unavailable")
		return NewUnconfiguredStore()
	default:
		return NewGormStore(db)
	}
}
