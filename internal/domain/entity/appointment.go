package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is read-only through the API; referential integrity to the
// patient is enforced by the store.
type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StartsAt  time.Time `gorm:"not null;index" json:"starts_at"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
