package handler

import (
	"net/http"

	"mediagenda/internal/mediator"
	"mediagenda/pkg/response"
)

type UserHandler struct {
	mediator *mediator.Mediator
}

func NewUserHandler(m *mediator.Mediator) *UserHandler {
	return &UserHandler{mediator: m}
}

// GetAllUsers lists account profiles. Administrator-only at the router.
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, h.mediator.Users())
}

// GetDashboard returns the aggregate counters for the dashboard view.
func (h *UserHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, h.mediator.DashboardStats())
}

// GetSettings exposes the app_settings mirror.
func (h *UserHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, h.mediator.Settings())
}
