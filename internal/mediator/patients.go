package mediator

import (
	"context"
	"errors"

	"mediagenda/internal/converter"
	"mediagenda/internal/domain/entity"
	"mediagenda/internal/gateway"

	"github.com/google/uuid"
)

// Patients returns the patient mirror, ordered by name.
func (m *Mediator) Patients() []entity.Patient {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entity.Patient, len(m.patients))
	copy(out, m.patients)
	return out
}

// VisiblePatients applies the role-scoped filter: a health professional
// sees only the patients they registered, an administrator sees all.
func (m *Mediator) VisiblePatients() []entity.Patient {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user := m.session.CurrentUser
	if user == nil || user.Role != entity.RoleHealthProfessional {
		out := make([]entity.Patient, len(m.patients))
		copy(out, m.patients)
		return out
	}

	out := make([]entity.Patient, 0, len(m.patients))
	for _, p := range m.patients {
		if p.RegisteredBy == user.ID {
			out = append(out, p)
		}
	}
	return out
}

// CanEditPatient reports whether the current session may edit the patient:
// administrators always, health professionals only within their own
// establishment. Advisory only.
func (m *Mediator) CanEditPatient(p entity.Patient) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user := m.session.CurrentUser
	if user == nil {
		return false
	}
	if user.Role == entity.RoleAdministrator {
		return true
	}
	return user.Role == entity.RoleHealthProfessional && p.BasicHealthUnit == user.Establishment
}

// CreatePatient writes the patient through to the store and appends the
// store-assigned identity to the mirror. RegisteredBy is stamped with the
// current session's user id.
func (m *Mediator) CreatePatient(ctx context.Context, input entity.Patient) (*entity.Patient, error) {
	user, err := m.currentUser()
	if err != nil {
		return nil, err
	}

	row := converter.PatientToRow(&input)
	row.RegisteredBy = user.ID

	if err := m.store.Patients.Insert(ctx, row); err != nil {
		m.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	created := converter.RowToPatient(row)

	m.mu.Lock()
	m.patients = append(m.patients, *created)
	sortPatients(m.patients)
	m.mu.Unlock()

	return created, nil
}

// UpdatePatient writes only the provided fields through to the store, then
// refetches the collection. The refetch keeps the mirror honest across the
// wire field mapping instead of patching each translated column in place.
func (m *Mediator) UpdatePatient(ctx context.Context, id uuid.UUID, patch entity.PatientPatch) error {
	if _, err := m.currentUser(); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return ErrEmptyPatch
	}

	columns := converter.PatientPatchToColumns(patch)
	if err := m.store.Patients.Update(ctx, id, columns); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return ErrPatientNotFound
		}
		m.log.Warnf("Failed to update patient %s: %+v", id, err)
		return err
	}

	m.refreshPatients(ctx)
	return nil
}

// DeletePatient deletes remotely then removes from the mirror. No cascade:
// appointments and list memberships referencing the patient are left as-is.
func (m *Mediator) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if _, err := m.currentUser(); err != nil {
		return err
	}

	if err := m.store.Patients.Delete(ctx, id); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return ErrPatientNotFound
		}
		m.log.Warnf("Failed to delete patient %s: %+v", id, err)
		return err
	}

	m.mu.Lock()
	for i, p := range m.patients {
		if p.ID == id {
			m.patients = append(m.patients[:i], m.patients[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	return nil
}

func (m *Mediator) refreshPatients(ctx context.Context) {
	rows, err := m.store.Patients.SelectAll(ctx)
	if err != nil {
		m.log.Warnf("Failed to refresh patients, keeping previous mirror: %+v", err)
		return
	}

	patients := make([]entity.Patient, 0, len(rows))
	for i := range rows {
		patients = append(patients, *converter.RowToPatient(&rows[i]))
	}
	sortPatients(patients)

	m.mu.Lock()
	m.patients = patients
	m.mu.Unlock()
}
