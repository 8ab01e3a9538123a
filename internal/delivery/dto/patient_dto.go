package dto

// Request validation is presence-only: CPF checksums, phone formats and the
// like are not checked anywhere client-side.

type CreatePatientRequest struct {
	Name            string `json:"name" validate:"required"`
	CPF             string `json:"cpf" validate:"required"`
	Phone           string `json:"phone" validate:"omitempty"`
	BasicHealthUnit string `json:"basicHealthUnit" validate:"omitempty"`
	Address         string `json:"address" validate:"omitempty"`
	SUSCard         string `json:"susCard" validate:"omitempty"`
	CommunityAgent  string `json:"communityAgent" validate:"omitempty"`
	DoctorType      string `json:"doctorType" validate:"omitempty"`
}

type UpdatePatientRequest struct {
	Name            *string `json:"name,omitempty"`
	CPF             *string `json:"cpf,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	BasicHealthUnit *string `json:"basicHealthUnit,omitempty"`
	Address         *string `json:"address,omitempty"`
	SUSCard         *string `json:"susCard,omitempty"`
	CommunityAgent  *string `json:"communityAgent,omitempty"`
	DoctorType      *string `json:"doctorType,omitempty"`
}
