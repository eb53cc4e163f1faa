package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient record owned by the store.
type Patient struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName          string     `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName           string     `gorm:"type:varchar(255);not null" json:"last_name"`
	Phone              string     `gorm:"type:varchar(32);index" json:"phone,omitempty"`
	Email              string     `gorm:"type:varchar(255);index" json:"email,omitempty"`
	RegistrationNumber string     `gorm:"type:varchar(64);index" json:"registration_number,omitempty"`
	BirthDate          *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Gender             string     `gorm:"type:varchar(16)" json:"gender,omitempty"`
	BranchID           string     `gorm:"type:varchar(64);index" json:"branch_id,omitempty"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime;index" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
