package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	FirstName          string `json:"first_name" validate:"required"`
	LastName           string `json:"last_name" validate:"required"`
	Phone              string `json:"phone" validate:"omitempty,min=6"`
	Email              string `json:"email" validate:"omitempty,email"`
	RegistrationNumber string `json:"registration_number" validate:"omitempty,min=3"`
	BirthDate          string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender             string `json:"gender" validate:"omitempty"`
	BranchID           string `json:"branch_id" validate:"omitempty"`
}

// UpdatePatientRequest carries a partial body; only provided fields are
// applied.
type UpdatePatientRequest struct {
	FirstName          *string `json:"first_name" validate:"omitempty,min=1"`
	LastName           *string `json:"last_name" validate:"omitempty,min=1"`
	Phone              *string `json:"phone" validate:"omitempty,min=6"`
	Email              *string `json:"email" validate:"omitempty,email"`
	RegistrationNumber *string `json:"registration_number" validate:"omitempty,min=3"`
	BirthDate          *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender             *string `json:"gender" validate:"omitempty"`
	BranchID           *string `json:"branch_id" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID                 uuid.UUID `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Phone              string    `json:"phone,omitempty"`
	Email              string    `json:"email,omitempty"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
	BirthDate          string    `json:"birth_date,omitempty"`
	Gender             string    `json:"gender,omitempty"`
	BranchID           string    `json:"branch_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
