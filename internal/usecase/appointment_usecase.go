package usecase

import (
	"context"
	"time"

	"mdent-api/internal/converter"
	"mdent-api/internal/delivery/dto"
	"mdent-api/internal/domain/repository"
	"mdent-api/pkg/apperrors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const maxAppointmentResults = 200

type AppointmentUsecase interface {
	// ListAppointments returns appointments ascending by start time, each
	// with its patient inlined. A non-empty day (YYYY-MM-DD) constrains to
	// that calendar day in server-local time.
	ListAppointments(ctx context.Context, day string) ([]dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, day string) ([]dto.AppointmentResponse, error) {
	var window *repository.TimeWindow
	if day != "" {
		w, err := dayWindow(day)
		if err != nil {
			return nil, apperrors.ValidationMessage("day must be a date in 2006-01-02 format")
		}
		window = w
	}

	appointments, err := u.appointmentRepo.List(ctx, u.db, window, maxAppointmentResults)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, apperrors.FromStore(err)
	}

	return converter.AppointmentsToResponses(appointments), nil
}

// dayWindow expands a YYYY-MM-DD day into the half-open interval
// [start-of-day, start-of-next-day) in server-local time.
func dayWindow(day string) (*repository.TimeWindow, error) {
	parsed, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		return nil, err
	}
	start := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Local)
	return &repository.TimeWindow{
		Start: start,
		End:   start.AddDate(0, 0, 1),
	}, nil
}
