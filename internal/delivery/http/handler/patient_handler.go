package handler

import (
	"encoding/json"
	"net/http"

	"mdent-api/internal/delivery/dto"
	"mdent-api/internal/usecase"
	"mdent-api/pkg/apperrors"
	"mdent-api/pkg/response"
	"mdent-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
	log            *logrus.Logger
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator, log *logrus.Logger) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
		log:            log,
	}
}

// ListPatients returns patients matching the optional free-text q parameter,
// newest-updated first.
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	patients, err := h.patientUsecase.ListPatients(r.Context(), query)
	if err != nil {
		response.FromError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, patients)
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.FromError(h.log, w, apperrors.ValidationMessage("invalid request body"))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.FromError(h.log, w, err)
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		response.FromError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusCreated, patient)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := parsePatientID(r)
	if err != nil {
		response.FromError(h.log, w, err)
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		response.FromError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := parsePatientID(r)
	if err != nil {
		response.FromError(h.log, w, err)
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.FromError(h.log, w, apperrors.ValidationMessage("invalid request body"))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.FromError(h.log, w, err)
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), id, &req)
	if err != nil {
		response.FromError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := parsePatientID(r)
	if err != nil {
		response.FromError(h.log, w, err)
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), id); err != nil {
		response.FromError(h.log, w, err)
		return
	}

	response.NoContent(w)
}

func parsePatientID(r *http.Request) (uuid.UUID, error) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		return uuid.Nil, apperrors.ValidationMessage("invalid patient id")
	}
	return id, nil
}
