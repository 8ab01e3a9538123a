package dto

import "mediagenda/internal/domain/entity"

type LoginRequest struct {
	CPF      string `json:"cpf" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignUpRequest struct {
	Name          string `json:"name" validate:"required"`
	CPF           string `json:"cpf" validate:"required"`
	Role          string `json:"role" validate:"required,oneof=administrator health_professional"`
	Establishment string `json:"establishment" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Password      string `json:"password" validate:"required,min=6"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SessionResponse exposes the mediator's session snapshot. The state only
// becomes authenticated once the gateway's session notification has been
// consumed, which may be after a successful login response.
type SessionResponse struct {
	State       entity.SessionState `json:"state"`
	CurrentUser *entity.User        `json:"currentUser,omitempty"`
	CurrentView entity.ViewType     `json:"currentView"`
}

type SetViewRequest struct {
	View string `json:"view" validate:"required"`
}
