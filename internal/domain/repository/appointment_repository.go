package repository

import (
	"context"
	"time"

	"mdent-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	// List returns at most limit appointments ordered by starts_at ascending,
	// each with its patient preloaded. A nil window returns all appointments;
	// otherwise results are constrained to [window.Start, window.End).
	List(ctx context.Context, db *gorm.DB, window *TimeWindow, limit int) ([]entity.Appointment, error)
}

// TimeWindow is a half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time
	End   time.Time
}
