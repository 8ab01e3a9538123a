package mediator

import (
	"context"
	"errors"

	"mediagenda/internal/converter"
	"mediagenda/internal/domain/entity"
	"mediagenda/internal/gateway"

	"github.com/google/uuid"
)

// SchedulingLists returns the list mirror, ordered by date then name.
func (m *Mediator) SchedulingLists() []entity.SchedulingList {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entity.SchedulingList, len(m.lists))
	for i, l := range m.lists {
		out[i] = copySchedulingList(l)
	}
	return out
}

func (m *Mediator) CreateSchedulingList(ctx context.Context, input entity.SchedulingList) (*entity.SchedulingList, error) {
	if _, err := m.currentUser(); err != nil {
		return nil, err
	}

	row := converter.SchedulingListToRow(&input)
	if err := m.store.SchedulingLists.Insert(ctx, row); err != nil {
		m.log.Warnf("Failed to create scheduling list: %+v", err)
		return nil, err
	}

	created := entity.SchedulingList{
		ID:              row.ID,
		Name:            row.Name,
		Date:            row.Date,
		DoctorID:        row.DoctorID,
		DoctorType:      row.DoctorType,
		PatientIDs:      []uuid.UUID{},
		PatientStatuses: map[uuid.UUID]entity.MemberStatus{},
		CreatedAt:       row.CreatedAt,
	}

	m.mu.Lock()
	m.lists = append(m.lists, copySchedulingList(created))
	sortSchedulingLists(m.lists)
	m.mu.Unlock()

	return &created, nil
}

// DeleteSchedulingList deletes the list remotely and from the mirror. Join
// rows and derived appointments are not cleaned up.
func (m *Mediator) DeleteSchedulingList(ctx context.Context, id uuid.UUID) error {
	if _, err := m.currentUser(); err != nil {
		return err
	}

	if err := m.store.SchedulingLists.Delete(ctx, id); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return ErrListNotFound
		}
		m.log.Warnf("Failed to delete scheduling list %s: %+v", id, err)
		return err
	}

	m.mu.Lock()
	for i, l := range m.lists {
		if l.ID == id {
			for _, pid := range l.PatientIDs {
				m.dropListFromIndex(pid, id)
			}
			m.lists = append(m.lists[:i], m.lists[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	return nil
}

// AddPatientToList inserts the membership join row. When the acting session
// is an administrator, a derived appointment is synthesized and persisted
// for the list's doctor and date with a placeholder time, tagged as created
// by the administrator role. A non-administrator add produces no
// appointment. Removal never retracts the derived appointment.
func (m *Mediator) AddPatientToList(ctx context.Context, listID, patientID uuid.UUID) error {
	user, err := m.currentUser()
	if err != nil {
		return err
	}

	m.mu.RLock()
	list, ok := m.findList(listID)
	m.mu.RUnlock()
	if !ok {
		return ErrListNotFound
	}
	if list.HasPatient(patientID) {
		return ErrAlreadyAMember
	}

	member := &gateway.ListMemberRow{ListID: listID, PatientID: patientID}
	if err := m.store.ListMembers.Insert(ctx, member); err != nil {
		// The mirror pre-check above is advisory; the store's unique
		// constraint is what actually rejects a racing duplicate add.
		if errors.Is(err, gateway.ErrDuplicate) {
			return ErrAlreadyAMember
		}
		m.log.Warnf("Failed to add patient %s to list %s: %+v", patientID, listID, err)
		return err
	}

	m.mu.Lock()
	if l, ok := m.findListRef(listID); ok {
		l.PatientIDs = append(l.PatientIDs, patientID)
		m.listsByPatient[patientID] = append(m.listsByPatient[patientID], listID)
	}
	m.mu.Unlock()

	if user.Role != entity.RoleAdministrator {
		return nil
	}

	appointment := entity.Appointment{
		PatientID:     patientID,
		DoctorID:      list.DoctorID,
		Date:          list.Date,
		Time:          "A definir (Lista: " + list.Name + ")",
		Status:        entity.AppointmentScheduled,
		CreatedByRole: entity.RoleAdministrator,
	}

	row := converter.AppointmentToRow(&appointment)
	if err := m.store.Appointments.Insert(ctx, row); err != nil {
		m.log.Warnf("Failed to create derived appointment for patient %s: %+v", patientID, err)
		return err
	}

	m.mu.Lock()
	m.appointments = append(m.appointments, *converter.RowToAppointment(row))
	sortAppointments(m.appointments)
	m.mu.Unlock()

	return nil
}

// RemovePatientFromList deletes the membership join row. The join row holds
// the member status, so the annotation disappears with the membership; other
// members are untouched.
func (m *Mediator) RemovePatientFromList(ctx context.Context, listID, patientID uuid.UUID) error {
	if _, err := m.currentUser(); err != nil {
		return err
	}

	if err := m.store.ListMembers.Delete(ctx, listID, patientID); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return ErrNotAMember
		}
		m.log.Warnf("Failed to remove patient %s from list %s: %+v", patientID, listID, err)
		return err
	}

	m.mu.Lock()
	if l, ok := m.findListRef(listID); ok {
		for i, pid := range l.PatientIDs {
			if pid == patientID {
				l.PatientIDs = append(l.PatientIDs[:i], l.PatientIDs[i+1:]...)
				break
			}
		}
		delete(l.PatientStatuses, patientID)
		m.dropListFromIndex(patientID, listID)
	}
	m.mu.Unlock()

	return nil
}

// SetPatientListStatus annotates a member independently of membership and
// of any appointment status. Setting MemberStatusNone clears the annotation.
func (m *Mediator) SetPatientListStatus(ctx context.Context, listID, patientID uuid.UUID, status entity.MemberStatus) error {
	if _, err := m.currentUser(); err != nil {
		return err
	}
	if !entity.ValidMemberStatus(status) {
		return ErrInvalidMemberStatus
	}

	if err := m.store.ListMembers.UpdateStatus(ctx, listID, patientID, converter.MemberStatusToColumn(status)); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return ErrNotAMember
		}
		m.log.Warnf("Failed to set status for patient %s in list %s: %+v", patientID, listID, err)
		return err
	}

	m.mu.Lock()
	if l, ok := m.findListRef(listID); ok {
		if status == entity.MemberStatusNone {
			delete(l.PatientStatuses, patientID)
		} else {
			l.PatientStatuses[patientID] = status
		}
	}
	m.mu.Unlock()

	return nil
}

func (m *Mediator) refreshSchedulingLists(ctx context.Context) {
	listRows, err := m.store.SchedulingLists.SelectAll(ctx)
	if err != nil {
		m.log.Warnf("Failed to refresh scheduling lists, keeping previous mirror: %+v", err)
		return
	}
	memberRows, err := m.store.ListMembers.SelectAll(ctx)
	if err != nil {
		m.log.Warnf("Failed to refresh list members, keeping previous mirror: %+v", err)
		return
	}

	lists := converter.RowsToSchedulingLists(listRows, memberRows)
	sortSchedulingLists(lists)

	index := make(map[uuid.UUID][]uuid.UUID)
	for _, l := range lists {
		for _, pid := range l.PatientIDs {
			index[pid] = append(index[pid], l.ID)
		}
	}

	m.mu.Lock()
	m.lists = lists
	m.listsByPatient = index
	m.mu.Unlock()
}

// findList returns a deep copy; callers hold no lock afterwards.
func (m *Mediator) findList(id uuid.UUID) (entity.SchedulingList, bool) {
	for _, l := range m.lists {
		if l.ID == id {
			return copySchedulingList(l), true
		}
	}
	return entity.SchedulingList{}, false
}

// findListRef returns a pointer into the mirror; callers must hold the lock.
func (m *Mediator) findListRef(id uuid.UUID) (*entity.SchedulingList, bool) {
	for i := range m.lists {
		if m.lists[i].ID == id {
			return &m.lists[i], true
		}
	}
	return nil, false
}

func (m *Mediator) dropListFromIndex(patientID, listID uuid.UUID) {
	ids := m.listsByPatient[patientID]
	for i, id := range ids {
		if id == listID {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(m.listsByPatient, patientID)
	} else {
		m.listsByPatient[patientID] = ids
	}
}

func copySchedulingList(l entity.SchedulingList) entity.SchedulingList {
	out := l
	out.PatientIDs = make([]uuid.UUID, len(l.PatientIDs))
	copy(out.PatientIDs, l.PatientIDs)
	out.PatientStatuses = make(map[uuid.UUID]entity.MemberStatus, len(l.PatientStatuses))
	for k, v := range l.PatientStatuses {
		out.PatientStatuses[k] = v
	}
	return out
}
