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

type SchedulingListHandler struct {
	mediator  *mediator.Mediator
	validator *validator.CustomValidator
}

func NewSchedulingListHandler(m *mediator.Mediator, validator *validator.CustomValidator) *SchedulingListHandler {
	return &SchedulingListHandler{
		mediator:  m,
		validator: validator,
	}
}

func (h *SchedulingListHandler) GetAllLists(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, h.mediator.SchedulingLists())
}

func (h *SchedulingListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSchedulingListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid doctor ID")
		return
	}

	list, err := h.mediator.CreateSchedulingList(r.Context(), entity.SchedulingList{
		Name:       req.Name,
		Date:       req.Date,
		DoctorID:   doctorID,
		DoctorType: req.DoctorType,
	})
	if err != nil {
		if errors.Is(err, mediator.ErrNotAuthenticated) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.InternalServerError(w, "failed to create scheduling list")
		return
	}

	response.Success(w, http.StatusCreated, list)
}

func (h *SchedulingListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid list ID")
		return
	}

	if err := h.mediator.DeleteSchedulingList(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, mediator.ErrListNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, mediator.ErrNotAuthenticated):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "failed to delete scheduling list")
		}
		return
	}

	response.Success(w, http.StatusOK, nil)
}

// AddMember inserts a membership. Under an administrator session this also
// persists a derived appointment for the list's doctor and date.
func (h *SchedulingListHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	listID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid list ID")
		return
	}

	var req dto.AddListMemberRequest
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

	if err := h.mediator.AddPatientToList(r.Context(), listID, patientID); err != nil {
		switch {
		case errors.Is(err, mediator.ErrListNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, mediator.ErrAlreadyAMember):
			response.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, mediator.ErrNotAuthenticated):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "failed to add patient to list")
		}
		return
	}

	response.Success(w, http.StatusOK, nil)
}

func (h *SchedulingListHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	listID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid list ID")
		return
	}
	patientID, err := uuid.Parse(vars["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid patient ID")
		return
	}

	if err := h.mediator.RemovePatientFromList(r.Context(), listID, patientID); err != nil {
		switch {
		case errors.Is(err, mediator.ErrNotAMember):
			response.NotFound(w, err.Error())
		case errors.Is(err, mediator.ErrNotAuthenticated):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "failed to remove patient from list")
		}
		return
	}

	response.Success(w, http.StatusOK, nil)
}

func (h *SchedulingListHandler) SetMemberStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	listID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid list ID")
		return
	}
	patientID, err := uuid.Parse(vars["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid patient ID")
		return
	}

	var req dto.SetMemberStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.mediator.SetPatientListStatus(r.Context(), listID, patientID, entity.MemberStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, mediator.ErrNotAMember):
			response.NotFound(w, err.Error())
		case errors.Is(err, mediator.ErrInvalidMemberStatus):
			response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, mediator.ErrNotAuthenticated):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "failed to set member status")
		}
		return
	}

	response.Success(w, http.StatusOK, nil)
}
