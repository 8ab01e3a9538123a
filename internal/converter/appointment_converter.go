package converter

import (
	"mediagenda/internal/domain/entity"
	"mediagenda/internal/gateway"
)

func RowToAppointment(row *gateway.AppointmentRow) *entity.Appointment {
	if row == nil {
		return nil
	}

	return &entity.Appointment{
		ID:            row.ID,
		PatientID:     row.PatientID,
		DoctorID:      row.DoctorID,
		Date:          row.Date,
		Time:          row.Time,
		Status:        entity.AppointmentStatus(row.Status),
		Notes:         row.Notes,
		CreatedByRole: entity.Role(row.CreatedByRole),
		CreatedAt:     row.CreatedAt,
	}
}

func AppointmentToRow(a *entity.Appointment) *gateway.AppointmentRow {
	return &gateway.AppointmentRow{
		PatientID:     a.PatientID,
		DoctorID:      a.DoctorID,
		Date:          a.Date,
		Time:          a.Time,
		Status:        string(a.Status),
		Notes:         a.Notes,
		CreatedByRole: string(a.CreatedByRole),
	}
}
