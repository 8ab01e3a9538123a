package dto

type CreateSchedulingListRequest struct {
	Name       string `json:"name" validate:"required"`
	Date       string `json:"date" validate:"required"`
	DoctorID   string `json:"doctorId" validate:"required"`
	DoctorType string `json:"doctorType" validate:"omitempty"`
}

type AddListMemberRequest struct {
	PatientID string `json:"patientId" validate:"required"`
}

// An empty status clears the annotation.
type SetMemberStatusRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=postponed desisted"`
}
