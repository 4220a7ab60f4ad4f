package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/jesap-it/recruiting-backend/internal/models"
)

// CandidateStore is the gorm-backed record store for candidati rows.
// Inserts only; nothing in the intake flow updates or deletes a record.
type CandidateStore struct {
	DB *gorm.DB
}

func NewCandidateStore(db *gorm.DB) *CandidateStore {
	return &CandidateStore{DB: db}
}

func (s *CandidateStore) Create(ctx context.Context, candidate *models.Candidate) error {
	return s.DB.WithContext(ctx).Create(candidate).Error
}

// FindAll returns every stored candidate, oldest first. An empty table
// yields an empty slice, not an error.
func (s *CandidateStore) FindAll(ctx context.Context) ([]models.Candidate, error) {
	candidates := []models.Candidate{}
	err := s.DB.WithContext(ctx).Order("created_at ASC").Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return candidates, nil
}
