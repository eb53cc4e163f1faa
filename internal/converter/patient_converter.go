package converter

import (
	"mdent-api/internal/delivery/dto"
	"mdent-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		ID:                 patient.ID,
		FirstName:          patient.FirstName,
		LastName:           patient.LastName,
		Phone:              patient.Phone,
		Email:              patient.Email,
		RegistrationNumber: patient.RegistrationNumber,
		Gender:             patient.Gender,
		BranchID:           patient.BranchID,
		CreatedAt:          patient.CreatedAt,
		UpdatedAt:          patient.UpdatedAt,
	}
	if patient.BirthDate != nil {
		resp.BirthDate = patient.BirthDate.Format("2006-01-02")
	}
	return resp
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
