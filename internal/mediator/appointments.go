package mediator

import (
	"context"
	"errors"

	"mediagenda/internal/converter"
	"mediagenda/internal/domain/entity"
	"mediagenda/internal/gateway"

	"github.com/google/uuid"
)

// Appointments returns the appointment mirror, ordered by date then time.
func (m *Mediator) Appointments() []entity.Appointment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entity.Appointment, len(m.appointments))
	copy(out, m.appointments)
	return out
}

// CreateAppointment writes the appointment through to the store.
// CreatedByRole is stamped with the current session's role; an empty status
// defaults to scheduled.
func (m *Mediator) CreateAppointment(ctx context.Context, input entity.Appointment) (*entity.Appointment, error) {
	user, err := m.currentUser()
	if err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = entity.AppointmentScheduled
	}
	input.CreatedByRole = user.Role

	row := converter.AppointmentToRow(&input)
	if err := m.store.Appointments.Insert(ctx, row); err != nil {
		m.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	created := converter.RowToAppointment(row)

	m.mu.Lock()
	m.appointments = append(m.appointments, *created)
	sortAppointments(m.appointments)
	m.mu.Unlock()

	return created, nil
}

// UpdateAppointmentStatus mutates the status in place. Any transition is
// allowed.
func (m *Mediator) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error {
	if _, err := m.currentUser(); err != nil {
		return err
	}
	switch status {
	case entity.AppointmentScheduled, entity.AppointmentCompleted, entity.AppointmentCancelled:
	default:
		return ErrInvalidStatus
	}

	if err := m.store.Appointments.Update(ctx, id, map[string]any{"status": string(status)}); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		m.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return err
	}

	m.mu.Lock()
	for i := range m.appointments {
		if m.appointments[i].ID == id {
			m.appointments[i].Status = status
			break
		}
	}
	m.mu.Unlock()

	return nil
}

// DeleteAppointment deletes remotely then removes from the mirror.
func (m *Mediator) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if _, err := m.currentUser(); err != nil {
		return err
	}

	if err := m.store.Appointments.Delete(ctx, id); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		m.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}

	m.mu.Lock()
	for i, a := range m.appointments {
		if a.ID == id {
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	return nil
}

func (m *Mediator) refreshAppointments(ctx context.Context) {
	rows, err := m.store.Appointments.SelectAll(ctx)
	if err != nil {
		m.log.Warnf("Failed to refresh appointments, keeping previous mirror: %+v", err)
		return
	}

	appointments := make([]entity.Appointment, 0, len(rows))
	for i := range rows {
		appointments = append(appointments, *converter.RowToAppointment(&rows[i]))
	}
	sortAppointments(appointments)

	m.mu.Lock()
	m.appointments = appointments
	m.mu.Unlock()
}
