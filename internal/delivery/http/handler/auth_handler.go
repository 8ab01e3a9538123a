package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mediagenda/internal/delivery/dto"
	"mediagenda/internal/domain/entity"
	"mediagenda/internal/mediator"
	"mediagenda/internal/service"
	"mediagenda/pkg/response"
	"mediagenda/pkg/validator"
)

type AuthHandler struct {
	mediator  *mediator.Mediator
	auth      *service.AuthService
	validator *validator.CustomValidator
}

func NewAuthHandler(m *mediator.Mediator, auth *service.AuthService, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		mediator:  m,
		auth:      auth,
		validator: validator,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pair, err := h.mediator.Login(r.Context(), req.CPF, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, mediator.ErrCPFNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "failed to log in")
		}
		return
	}

	response.Success(w, http.StatusOK, pair)
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user := entity.User{
		Name:          req.Name,
		CPF:           req.CPF,
		Role:          entity.Role(req.Role),
		Establishment: req.Establishment,
		Email:         req.Email,
	}

	if err := h.mediator.SignUp(r.Context(), user, req.Password); err != nil {
		switch {
		case errors.Is(err, mediator.ErrCPFAlreadyExists),
			errors.Is(err, mediator.ErrEmailAlreadyExists):
			response.Error(w, http.StatusConflict, err.Error())
		default:
			response.InternalServerError(w, "failed to sign up")
		}
		return
	}

	response.Success(w, http.StatusCreated, nil)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.mediator.Logout(r.Context()); err != nil {
		if errors.Is(err, mediator.ErrNotAuthenticated) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.InternalServerError(w, "failed to log out")
		return
	}

	response.Success(w, http.StatusOK, nil)
}

func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pair, err := h.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrTokenRevoked):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "failed to refresh token")
		}
		return
	}

	response.Success(w, http.StatusOK, pair)
}

// Session exposes the mediator's session snapshot. A login that just
// succeeded may still report authenticating here until the gateway's
// notification lands.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	session := h.mediator.Session()
	response.Success(w, http.StatusOK, dto.SessionResponse{
		State:       session.State,
		CurrentUser: session.CurrentUser,
		CurrentView: session.CurrentView,
	})
}

func (h *AuthHandler) SetView(w http.ResponseWriter, r *http.Request) {
	var req dto.SetViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.mediator.SetCurrentView(entity.ViewType(req.View)); err != nil {
		switch {
		case errors.Is(err, mediator.ErrViewNotAllowed):
			response.Forbidden(w, err.Error())
		case errors.Is(err, mediator.ErrNotAuthenticated):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "failed to switch view")
		}
		return
	}

	response.Success(w, http.StatusOK, nil)
}
