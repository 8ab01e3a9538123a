package gateway

import (
	"time"

	"github.com/google/uuid"
)

// Wire rows for the remote store's collections. Column names are flat
// lower-snake-case; the in-memory model in internal/domain/entity uses the
// application's field names. The converter package maps between the two on
// every read and write.

// PatientRow mirrors the patients collection.
type PatientRow struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	CPF             string    `gorm:"column:cpf;type:varchar(20);index" json:"cpf"`
	Phone           string    `gorm:"type:varchar(20)" json:"phone"`
	BasicHealthUnit string    `gorm:"column:basic_health_unit;type:varchar(255)" json:"basic_health_unit"`
	Address         string    `gorm:"type:text" json:"address"`
	SUSCard         string    `gorm:"column:sus_card;type:varchar(20)" json:"sus_card"`
	CommunityAgent  string    `gorm:"column:community_agent;type:varchar(255)" json:"community_agent"`
	DoctorType      string    `gorm:"column:doctor_type;type:varchar(100)" json:"doctor_type"`
	RegisteredBy    uuid.UUID `gorm:"column:registered_by;type:uuid;index" json:"registered_by"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PatientRow) TableName() string {
	return "patients"
}

// DoctorRow mirrors the doctors collection. Procedures travel as a single
// comma-joined text column.
type DoctorRow struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	CPF        string    `gorm:"column:cpf;type:varchar(20)" json:"cpf"`
	Specialty  string    `gorm:"type:varchar(100);index" json:"specialty"`
	CRM        string    `gorm:"column:crm;type:varchar(20)" json:"crm"`
	Procedures string    `gorm:"type:text" json:"procedures"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DoctorRow) TableName() string {
	return "doctors"
}

// AppointmentRow mirrors the appointments collection.
type AppointmentRow struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID `gorm:"column:patient_id;type:uuid;not null;index" json:"patient_id"`
	DoctorID      uuid.UUID `gorm:"column:doctor_id;type:uuid;not null;index" json:"doctor_id"`
	Date          string    `gorm:"type:varchar(20);not null;index" json:"date"`
	Time          string    `gorm:"type:varchar(100);not null" json:"time"`
	Status        string    `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedByRole string    `gorm:"column:created_by_role;type:varchar(30)" json:"created_by_role"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AppointmentRow) TableName() string {
	return "appointments"
}

// SchedulingListRow mirrors the scheduling_lists collection. Membership
// lives in scheduling_list_patients.
type SchedulingListRow struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Date       string    `gorm:"type:varchar(20);not null;index" json:"date"`
	DoctorID   uuid.UUID `gorm:"column:doctor_id;type:uuid;not null" json:"doctor_id"`
	DoctorType string    `gorm:"column:doctor_type;type:varchar(100)" json:"doctor_type"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SchedulingListRow) TableName() string {
	return "scheduling_lists"
}

// ListMemberRow is the join table between scheduling lists and patients.
// Status is independent of membership: nil means no annotation.
type ListMemberRow struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ListID    uuid.UUID `gorm:"column:list_id;type:uuid;not null;index" json:"list_id"`
	PatientID uuid.UUID `gorm:"column:patient_id;type:uuid;not null;index" json:"patient_id"`
	Status    *string   `gorm:"type:varchar(20)" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ListMemberRow) TableName() string {
	return "scheduling_list_patients"
}

// ProfileRow mirrors the profiles collection. The CPF is the login
// identifier and resolves to the account email used by the credential store.
type ProfileRow struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	CPF           string    `gorm:"column:cpf;type:varchar(20);uniqueIndex" json:"cpf"`
	Role          string    `gorm:"type:varchar(30);not null" json:"role"`
	Establishment string    `gorm:"type:varchar(255)" json:"establishment"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ProfileRow) TableName() string {
	return "profiles"
}

// CredentialRow is the auth-side credential store.
type CredentialRow struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CredentialRow) TableName() string {
	return "credentials"
}

// AppSettingRow mirrors the app_settings collection.
type AppSettingRow struct {
	Key   string `gorm:"primaryKey;type:varchar(100)" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

func (AppSettingRow) TableName() string {
	return "app_settings"
}
