package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the lifecycle status of an appointment.
// Any transition is allowed; the status is mutated in place.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a single booked appointment.
// Date and Time are opaque strings and are not validated for collisions.
type Appointment struct {
	ID            uuid.UUID         `json:"id"`
	PatientID     uuid.UUID         `json:"patientId"`
	DoctorID      uuid.UUID         `json:"doctorId"`
	Date          string            `json:"date"`
	Time          string            `json:"time"`
	Status        AppointmentStatus `json:"status"`
	Notes         string            `json:"notes,omitempty"`
	CreatedByRole Role              `json:"createdByRole,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentScheduled
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentCancelled
}
