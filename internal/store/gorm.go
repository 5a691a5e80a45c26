package store

import (
	"errors"

	"github.com/delbyte/codeolympics/internal/models"

	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindByEmail(email string) (*models.Participant, error) {
	var p models.Participant
	if err := s.db.Where("email = ?", email).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) Create(p *models.Participant) error {
	if err := s.db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *GormStore) IncrementPlayCount(email string) error {
	return s.db.Model(&models.Participant{}).
		Where("email = ?", email).
		Update("play_count", gorm.Expr("play_count + 1")).Error
}

func (s *GormStore) SaveAccepted(email string, combo models.AcceptedCombo) error {
	return s.db.Model(&models.Participant{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"accepted_constraint": combo.Constraint,
			"accepted_budget":     combo.Budget,
			"accepted_domain":     combo.Domain,
			"has_played":          true,
		}).Error
}
