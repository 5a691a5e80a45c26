package services

import (
	"errors"
	"time"

	"github.com/delbyte/codeolympics/internal/models"
	"github.com/delbyte/codeolympics/internal/store"
)

type ParticipantService struct {
	store store.ParticipantStore
}

func NewParticipantService(st store.ParticipantStore) *ParticipantService {
	return &ParticipantService{store: st}
}

// Register looks the email up and creates a fresh record when absent. The
// second return value is false when the participant already existed, which is
// the "already played" outcome rather than an error.
func (s *ParticipantService) Register(email, discordUsername string) (*models.Participant, bool, error) {
	existing, err := s.store.FindByEmail(email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	p := &models.Participant{
		Email:           email,
		DiscordUsername: discordUsername,
		PlayCount:       0,
		HasPlayed:       false,
		CreatedAt:       time.Now(),
	}
	if err := s.store.Create(p); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			// Lost the create race against a concurrent submission for the
			// same email; surface the winner as already played.
			if winner, ferr := s.store.FindByEmail(email); ferr == nil && winner != nil {
				return winner, false, nil
			}
		}
		return nil, false, err
	}
	return p, true, nil
}

func (s *ParticipantService) Get(email string) (*models.Participant, error) {
	return s.store.FindByEmail(email)
}
