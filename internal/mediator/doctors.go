package mediator

import (
	"context"
	"errors"

	"mediagenda/internal/converter"
	"mediagenda/internal/domain/entity"
	"mediagenda/internal/gateway"

	"github.com/google/uuid"
)

// Doctors returns the doctor mirror, ordered by name.
func (m *Mediator) Doctors() []entity.Doctor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entity.Doctor, len(m.doctors))
	copy(out, m.doctors)
	return out
}

func (m *Mediator) CreateDoctor(ctx context.Context, input entity.Doctor) (*entity.Doctor, error) {
	if _, err := m.currentUser(); err != nil {
		return nil, err
	}

	row := converter.DoctorToRow(&input)
	if err := m.store.Doctors.Insert(ctx, row); err != nil {
		m.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	created := converter.RowToDoctor(row)

	m.mu.Lock()
	m.doctors = append(m.doctors, *created)
	sortDoctors(m.doctors)
	m.mu.Unlock()

	return created, nil
}

// DeleteDoctor removes the doctor remotely and from the mirror. Appointments
// and scheduling lists referencing the doctor keep their dangling ids.
func (m *Mediator) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	if _, err := m.currentUser(); err != nil {
		return err
	}

	if err := m.store.Doctors.Delete(ctx, id); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return ErrDoctorNotFound
		}
		m.log.Warnf("Failed to delete doctor %s: %+v", id, err)
		return err
	}

	m.mu.Lock()
	for i, d := range m.doctors {
		if d.ID == id {
			m.doctors = append(m.doctors[:i], m.doctors[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	return nil
}

func (m *Mediator) refreshDoctors(ctx context.Context) {
	rows, err := m.store.Doctors.SelectAll(ctx)
	if err != nil {
		m.log.Warnf("Failed to refresh doctors, keeping previous mirror: %+v", err)
		return
	}

	doctors := make([]entity.Doctor, 0, len(rows))
	for i := range rows {
		doctors = append(doctors, *converter.RowToDoctor(&rows[i]))
	}
	sortDoctors(doctors)

	m.mu.Lock()
	m.doctors = doctors
	m.mu.Unlock()
}
