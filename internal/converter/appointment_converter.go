package converter

import (
	"mdent-api/internal/delivery/dto"
	"mdent-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity, with its preloaded
// patient, to the response DTO.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		StartsAt:  appointment.StartsAt,
		PatientID: appointment.PatientID,
		Patient:   PatientToResponse(&appointment.Patient),
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
