package http

import (
	"net/http"

	"mediagenda/internal/delivery/http/handler"
	"mediagenda/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	patientHandler        *handler.PatientHandler
	doctorHandler         *handler.DoctorHandler
	appointmentHandler    *handler.AppointmentHandler
	schedulingListHandler *handler.SchedulingListHandler
	userHandler           *handler.UserHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	schedulingListHandler *handler.SchedulingListHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		patientHandler:        patientHandler,
		doctorHandler:         doctorHandler,
		appointmentHandler:    appointmentHandler,
		schedulingListHandler: schedulingListHandler,
		userHandler:           userHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/signup", r.authHandler.SignUp).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/session", r.authHandler.Session).Methods(http.MethodGet)

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/session/view", r.authHandler.SetView).Methods(http.MethodPut)

	// Patients
	protected.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Doctors (registry visible to all, mutations are administrator-only)
	protected.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	protected.HandleFunc("/notifications", r.appointmentHandler.GetNotifications).Methods(http.MethodGet)

	// Scheduling lists
	protected.HandleFunc("/scheduling-lists", r.schedulingListHandler.GetAllLists).Methods(http.MethodGet)
	protected.HandleFunc("/scheduling-lists", r.schedulingListHandler.CreateList).Methods(http.MethodPost)
	protected.HandleFunc("/scheduling-lists/{id}", r.schedulingListHandler.DeleteList).Methods(http.MethodDelete)
	protected.HandleFunc("/scheduling-lists/{id}/patients", r.schedulingListHandler.AddMember).Methods(http.MethodPost)
	protected.HandleFunc("/scheduling-lists/{id}/patients/{patientId}", r.schedulingListHandler.RemoveMember).Methods(http.MethodDelete)
	protected.HandleFunc("/scheduling-lists/{id}/patients/{patientId}/status", r.schedulingListHandler.SetMemberStatus).Methods(http.MethodPatch)

	// Dashboard and settings
	protected.HandleFunc("/dashboard", r.userHandler.GetDashboard).Methods(http.MethodGet)
	protected.HandleFunc("/settings", r.userHandler.GetSettings).Methods(http.MethodGet)

	// Administrator-only routes
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdministrator)

	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	admin.HandleFunc("/users", r.userHandler.GetAllUsers).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
