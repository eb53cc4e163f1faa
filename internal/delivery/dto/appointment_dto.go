package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID        uuid.UUID        `json:"id"`
	StartsAt  time.Time        `json:"starts_at"`
	PatientID uuid.UUID        `json:"patient_id"`
	Patient   *PatientResponse `json:"patient,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
