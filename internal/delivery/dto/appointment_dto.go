package dto

type CreateAppointmentRequest struct {
	PatientID string `json:"patientId" validate:"required"`
	DoctorID  string `json:"doctorId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Notes     string `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}
