package entity

import (
	"time"

	"github.com/google/uuid"
)

// MemberStatus annotates a patient within a scheduling list, independent of
// both list membership and any appointment status. The empty value means no
// annotation.
type MemberStatus string

const (
	MemberStatusNone      MemberStatus = ""
	MemberStatusPostponed MemberStatus = "postponed"
	MemberStatusDesisted  MemberStatus = "desisted"
)

// ValidMemberStatus reports whether s is a settable member status.
func ValidMemberStatus(s MemberStatus) bool {
	return s == MemberStatusNone || s == MemberStatusPostponed || s == MemberStatusDesisted
}

// SchedulingList is a named, dated group of patients awaiting a specific
// doctor, used for mass-scheduling campaigns. Membership and per-member
// status are independent relations backed by a join table.
type SchedulingList struct {
	ID              uuid.UUID                  `json:"id"`
	Name            string                     `json:"name"`
	Date            string                     `json:"date"`
	DoctorID        uuid.UUID                  `json:"doctorId"`
	DoctorType      string                     `json:"doctorType"`
	PatientIDs      []uuid.UUID                `json:"patientIds"`
	PatientStatuses map[uuid.UUID]MemberStatus `json:"patientStatuses"`
	CreatedAt       time.Time                  `json:"createdAt"`
}

// HasPatient reports whether the patient is a member of the list.
func (l *SchedulingList) HasPatient(patientID uuid.UUID) bool {
	for _, id := range l.PatientIDs {
		if id == patientID {
			return true
		}
	}
	return false
}
