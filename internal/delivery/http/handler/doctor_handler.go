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

type DoctorHandler struct {
	mediator  *mediator.Mediator
	validator *validator.CustomValidator
}

func NewDoctorHandler(m *mediator.Mediator, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		mediator:  m,
		validator: validator,
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, h.mediator.Doctors())
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.mediator.CreateDoctor(r.Context(), entity.Doctor{
		Name:       req.Name,
		CPF:        req.CPF,
		Specialty:  req.Specialty,
		CRM:        req.CRM,
		Procedures: req.Procedures,
	})
	if err != nil {
		if errors.Is(err, mediator.ErrNotAuthenticated) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.InternalServerError(w, "failed to create doctor")
		return
	}

	response.Success(w, http.StatusCreated, doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid doctor ID")
		return
	}

	if err := h.mediator.DeleteDoctor(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, mediator.ErrDoctorNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, mediator.ErrNotAuthenticated):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "failed to delete doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, nil)
}
