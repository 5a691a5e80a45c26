package store

import "github.com/delbyte/codeolympics/internal/models"

// UnconfiguredStore fails every operation with ErrNotConfigured so handlers
// can tell "not set up" apart from a transport failure.
type UnconfiguredStore struct{}

func NewUnconfiguredStore() *UnconfiguredStore {
	return &UnconfiguredStore{}
}

func (*UnconfiguredStore) FindByEmail(string) (*models.Participant, error) {
	return nil, ErrNotConfigured
}

func (*UnconfiguredStore) Create(*models.Participant) error { return ErrNotConfigured }

func (*UnconfiguredStore) IncrementPlayCount(string) error { return ErrNotConfigured }

func (*UnconfiguredStore) SaveAccepted(string, models.AcceptedCombo) error {
	return ErrNotConfigured
}
