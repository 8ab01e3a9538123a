package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mediagenda/internal/delivery/dto"
	"mediagenda/internal/domain/entity"
	"mediagenda/internal/mediator"
	"mediagenda/pkg/response"
	"mediagenda/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	mediator  *mediator.Mediator
	validator *validator.CustomValidator
}

func NewPatientHandler(m *mediator.Mediator, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		mediator:  m,
		validator: validator,
	}
}

// GetAllPatients returns the role-scoped view of the patient mirror.
func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, h.mediator.VisiblePatients())
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.mediator.CreatePatient(r.Context(), entity.Patient{
		Name:            req.Name,
		CPF:             req.CPF,
		Phone:           req.Phone,
		BasicHealthUnit: req.BasicHealthUnit,
		Address:         req.Address,
		SUSCard:         req.SUSCard,
		CommunityAgent:  req.CommunityAgent,
		DoctorType:      req.DoctorType,
	})
	if err != nil {
		if errors.Is(err, mediator.ErrNotAuthenticated) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.InternalServerError(w, "failed to create patient")
		return
	}

	response.Success(w, http.StatusCreated, patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid patient ID")
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := entity.PatientPatch{
		Name:            req.Name,
		CPF:             req.CPF,
		Phone:           req.Phone,
		BasicHealthUnit: req.BasicHealthUnit,
		Address:         req.Address,
		SUSCard:         req.SUSCard,
		CommunityAgent:  req.CommunityAgent,
		DoctorType:      req.DoctorType,
	}

	if err := h.mediator.UpdatePatient(r.Context(), id, patch); err != nil {
		switch {
		case errors.Is(err, mediator.ErrPatientNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, mediator.ErrEmptyPatch):
			response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, mediator.ErrNotAuthenticated):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, nil)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid patient ID")
		return
	}

	if err := h.mediator.DeletePatient(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, mediator.ErrPatientNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, mediator.ErrNotAuthenticated):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "failed to delete patient")
		}
		return
	}

	response.Success(w, http.StatusOK, nil)
}
