package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role gates visible views and mutation permissions. The checks are
// advisory; the remote store is the actual system of record.
type Role string

const (
	RoleAdministrator      Role = "administrator"
	RoleHealthProfessional Role = "health_professional"
)

// User is an account profile. The CPF is the login identifier; the email
// behind it is an implementation detail of the credential store.
type User struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Role          Role      `json:"role"`
	CPF           string    `json:"cpf"`
	Establishment string    `json:"establishment"`
	Email         string    `json:"email,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (u *User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}
