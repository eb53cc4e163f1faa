package usecase

import (
	"context"
	"time"

	"mdent-api/internal/converter"
	"mdent-api/internal/delivery/dto"
	"mdent-api/internal/domain/entity"
	"mdent-api/internal/domain/repository"
	"mdent-api/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// maxPatientResults caps list results. There is no pagination cursor beyond
// the cap; that is a deliberate simplification.
const maxPatientResults = 50

type PatientUsecase interface {
	ListPatients(ctx context.Context, query string) ([]dto.PatientResponse, error)
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context, query string) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.Search(ctx, u.db, query, maxPatientResults)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, apperrors.FromStore(err)
	}

	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Phone:              req.Phone,
		Email:              req.Email,
		RegistrationNumber: req.RegistrationNumber,
		Gender:             req.Gender,
		BranchID:           req.BranchID,
	}

	if req.BirthDate != "" {
		// Format already checked by the validation layer.
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, apperrors.ValidationMessage("birth_date must be a date in 2006-01-02 format")
		}
		patient.BirthDate = &birthDate
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, apperrors.FromStore(err)
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, apperrors.FromStore(err)
	}
	if patient == nil {
		return nil, apperrors.NotFound("patient")
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, apperrors.FromStore(err)
	}
	if patient == nil {
		return nil, apperrors.NotFound("patient")
	}

	applyPatientUpdate(patient, req)

	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			patient.BirthDate = nil
		} else {
			birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
			if err != nil {
				return nil, apperrors.ValidationMessage("birth_date must be a date in 2006-01-02 format")
			}
			patient.BirthDate = &birthDate
		}
	}

	if err := u.patientRepo.Update(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, apperrors.FromStore(err)
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id uuid.UUID) error {
	rows, err := u.patientRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return apperrors.FromStore(err)
	}
	// Repeating a delete on a gone id is a not-found, not a crash.
	if rows == 0 {
		return apperrors.NotFound("patient")
	}

	return nil
}

// applyPatientUpdate copies only the provided fields onto the entity.
func applyPatientUpdate(patient *entity.Patient, req *dto.UpdatePatientRequest) {
	if req.FirstName != nil {
		patient.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		patient.LastName = *req.LastName
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.RegistrationNumber != nil {
		patient.RegistrationNumber = *req.RegistrationNumber
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.BranchID != nil {
		patient.BranchID = *req.BranchID
	}
}
