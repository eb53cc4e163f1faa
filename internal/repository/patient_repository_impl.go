package repository

import (
	"context"
	"errors"

	"mdent-api/internal/domain/entity"
	domainRepo "mdent-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

// searchScope expands a free-text term into an OR of case-insensitive
// substring matches. An empty term must not add a WHERE clause at all:
// some engines would treat contains("") as match-everything, others not,
// so the guard stays explicit.
func searchScope(query string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if query == "" {
			return db
		}
		pattern := "%" + query + "%"
		return db.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR phone LIKE ? OR email ILIKE ? OR registration_number ILIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}
}

func (r *patientRepository) Search(ctx context.Context, db *gorm.DB, query string, limit int) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).
		Scopes(searchScope(query)).
		Order("updated_at DESC").
		Limit(limit).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
