package dto

type CreateDoctorRequest struct {
	Name       string   `json:"name" validate:"required"`
	CPF        string   `json:"cpf" validate:"required"`
	Specialty  string   `json:"specialty" validate:"required"`
	CRM        string   `json:"crm" validate:"required"`
	Procedures []string `json:"procedures" validate:"omitempty"`
}
