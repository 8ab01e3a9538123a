package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the in-memory representation of a registered patient.
// Field names follow the application model; the wire format used by the
// remote store is flat lower-snake-case and lives in the gateway package.
type Patient struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	CPF             string    `json:"cpf"`
	Phone           string    `json:"phone"`
	BasicHealthUnit string    `json:"basicHealthUnit"`
	Address         string    `json:"address"`
	SUSCard         string    `json:"susCard"`
	CommunityAgent  string    `json:"communityAgent"`
	DoctorType      string    `json:"doctorType"`
	RegisteredBy    uuid.UUID `json:"registeredBy"`
	CreatedAt       time.Time `json:"createdAt"`
}

// PatientPatch carries a partial update. Nil fields are left untouched.
type PatientPatch struct {
	Name            *string `json:"name,omitempty"`
	CPF             *string `json:"cpf,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	BasicHealthUnit *string `json:"basicHealthUnit,omitempty"`
	Address         *string `json:"address,omitempty"`
	SUSCard         *string `json:"susCard,omitempty"`
	CommunityAgent  *string `json:"communityAgent,omitempty"`
	DoctorType      *string `json:"doctorType,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p PatientPatch) IsEmpty() bool {
	return p.Name == nil && p.CPF == nil && p.Phone == nil &&
		p.BasicHealthUnit == nil && p.Address == nil && p.SUSCard == nil &&
		p.CommunityAgent == nil && p.DoctorType == nil
}
