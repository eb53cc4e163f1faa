package repository

import (
	"context"

	"mdent-api/internal/domain/entity"
	domainRepo "mdent-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) List(ctx context.Context, db *gorm.DB, window *domainRepo.TimeWindow, limit int) ([]entity.Appointment, error) {
	tx := db.WithContext(ctx).Preload("Patient")
	if window != nil {
		tx = tx.Where("starts_at >= ? AND starts_at < ?", window.Start, window.End)
	}

	var appointments []entity.Appointment
	err := tx.Order("starts_at ASC").Limit(limit).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
