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

type AppointmentHandler struct {
	mediator  *mediator.Mediator
	validator *validator.CustomValidator
}

func NewAppointmentHandler(m *mediator.Mediator, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		mediator:  m,
		validator: validator,
	}
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, h.mediator.Appointments())
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid patient ID")
		return
	}
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid doctor ID")
		return
	}

	appointment, err := h.mediator.CreateAppointment(r.Context(), entity.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		if errors.Is(err, mediator.ErrNotAuthenticated) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.InternalServerError(w, "failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, appointment)
}

func (h *AppointmentHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.mediator.UpdateAppointmentStatus(r.Context(), id, entity.AppointmentStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, mediator.ErrAppointmentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, mediator.ErrNotAuthenticated):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, nil)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid appointment ID")
		return
	}

	if err := h.mediator.DeleteAppointment(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, mediator.ErrAppointmentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, mediator.ErrNotAuthenticated):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, nil)
}

// GetNotifications returns the derived appointments_list view for the
// current session.
func (h *AppointmentHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, h.mediator.Notifications())
}
