package gateway

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by store operations when no row matches the id.
var ErrNotFound = errors.New("row not found")

// ErrDuplicate is returned by inserts that violate a unique constraint.
var ErrDuplicate = errors.New("row already exists")

// The remote store is consumed through narrow per-collection contracts:
// select, insert (returns the server-assigned id and timestamp on the row),
// partial update by id, delete by id. Implementations live in
// internal/repository; tests substitute in-memory fakes.

type PatientStore interface {
	Insert(ctx context.Context, row *PatientRow) error
	Update(ctx context.Context, id uuid.UUID, columns map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	SelectAll(ctx context.Context) ([]PatientRow, error)
}

type DoctorStore interface {
	Insert(ctx context.Context, row *DoctorRow) error
	Delete(ctx context.Context, id uuid.UUID) error
	SelectAll(ctx context.Context) ([]DoctorRow, error)
}

type AppointmentStore interface {
	Insert(ctx context.Context, row *AppointmentRow) error
	Update(ctx context.Context, id uuid.UUID, columns map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	SelectAll(ctx context.Context) ([]AppointmentRow, error)
}

type SchedulingListStore interface {
	Insert(ctx context.Context, row *SchedulingListRow) error
	Delete(ctx context.Context, id uuid.UUID) error
	SelectAll(ctx context.Context) ([]SchedulingListRow, error)
}

type ListMemberStore interface {
	Insert(ctx context.Context, row *ListMemberRow) error
	Delete(ctx context.Context, listID, patientID uuid.UUID) error
	UpdateStatus(ctx context.Context, listID, patientID uuid.UUID, status *string) error
	SelectAll(ctx context.Context) ([]ListMemberRow, error)
}

type ProfileStore interface {
	Insert(ctx context.Context, row *ProfileRow) error
	FindByCPF(ctx context.Context, cpf string) (*ProfileRow, error)
	FindByEmail(ctx context.Context, email string) (*ProfileRow, error)
	SelectAll(ctx context.Context) ([]ProfileRow, error)
}

type CredentialStore interface {
	Insert(ctx context.Context, row *CredentialRow) error
	FindByEmail(ctx context.Context, email string) (*CredentialRow, error)
}

type AppSettingStore interface {
	Get(ctx context.Context, key string) (*AppSettingRow, error)
	SelectAll(ctx context.Context) ([]AppSettingRow, error)
}

// Store bundles the collection contracts consumed by the mediator.
type Store struct {
	Patients        PatientStore
	Doctors         DoctorStore
	Appointments    AppointmentStore
	SchedulingLists SchedulingListStore
	ListMembers     ListMemberStore
	Profiles        ProfileStore
	Settings        AppSettingStore
}
