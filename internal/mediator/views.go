package mediator

import (
	"time"

	"mediagenda/internal/domain/entity"

	"github.com/google/uuid"
)

// Notifications derives the appointments_list view: appointments created by
// an administrator for patients registered by the current user. Each entry
// carries the patient's scheduling-list annotation as the alert, resolved
// through the patient->lists index rather than a scan of every list.
func (m *Mediator) Notifications() []entity.Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user := m.session.CurrentUser
	if user == nil {
		return nil
	}

	patientsByID := make(map[uuid.UUID]entity.Patient, len(m.patients))
	for _, p := range m.patients {
		patientsByID[p.ID] = p
	}

	out := make([]entity.Notification, 0)
	for _, apt := range m.appointments {
		if apt.CreatedByRole != entity.RoleAdministrator {
			continue
		}
		patient, ok := patientsByID[apt.PatientID]
		if !ok || patient.RegisteredBy != user.ID {
			continue
		}
		out = append(out, entity.Notification{
			Appointment: apt,
			Patient:     patient,
			Alert:       m.memberAlert(patient.ID),
		})
	}
	return out
}

// memberAlert returns the first non-empty list status for the patient.
// Callers must hold at least the read lock.
func (m *Mediator) memberAlert(patientID uuid.UUID) entity.MemberStatus {
	for _, listID := range m.listsByPatient[patientID] {
		for i := range m.lists {
			if m.lists[i].ID != listID {
				continue
			}
			if status, ok := m.lists[i].PatientStatuses[patientID]; ok {
				return status
			}
		}
	}
	return entity.MemberStatusNone
}

// DashboardStats backs the dashboard screen. The patient count respects the
// role-scoped visibility filter.
func (m *Mediator) DashboardStats() entity.DashboardStats {
	visible := len(m.VisiblePatients())

	m.mu.RLock()
	defer m.mu.RUnlock()

	today := time.Now().Format("2006-01-02")
	todays := 0
	for _, apt := range m.appointments {
		if apt.Date == today {
			todays++
		}
	}

	return entity.DashboardStats{
		Patients:           visible,
		TodaysAppointments: todays,
		Doctors:            len(m.doctors),
		SchedulingLists:    len(m.lists),
	}
}
