package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a registry entry for a doctor.
// Procedures is a free-form ordered tag set.
type Doctor struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	CPF        string    `json:"cpf"`
	Specialty  string    `json:"specialty"`
	CRM        string    `json:"crm"`
	Procedures []string  `json:"procedures"`
	CreatedAt  time.Time `json:"createdAt"`
}
