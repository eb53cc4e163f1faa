package repository

import (
	"context"

	"mdent-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	// Search returns at most limit patients ordered by updated_at descending.
	// An empty query returns the unfiltered set.
	Search(ctx context.Context, db *gorm.DB, query string, limit int) ([]entity.Patient, error)
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	// Delete reports rows affected so callers can distinguish a repeat delete.
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
