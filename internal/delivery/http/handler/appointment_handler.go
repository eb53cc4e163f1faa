package handler

import (
	"net/http"

	"mdent-api/internal/usecase"
	"mdent-api/pkg/response"
	"mdent-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	log                *logrus.Logger
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator, log *logrus.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		log:                log,
	}
}

// ListAppointments returns appointments ascending by start time, optionally
// constrained to a single day.
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), day)
	if err != nil {
		response.FromError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}
