package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultView(t *testing.T) {
	assert.Equal(t, ViewDashboard, DefaultView(RoleAdministrator))
	assert.Equal(t, ViewAppointmentsList, DefaultView(RoleHealthProfessional))
}

func TestViewAllowed(t *testing.T) {
	assert.True(t, ViewAllowed(RoleAdministrator, ViewUsers))
	assert.True(t, ViewAllowed(RoleAdministrator, ViewSchedule))
	assert.True(t, ViewAllowed(RoleHealthProfessional, ViewPatients))
	assert.True(t, ViewAllowed(RoleHealthProfessional, ViewAppointmentsList))

	assert.False(t, ViewAllowed(RoleHealthProfessional, ViewUsers))
	assert.False(t, ViewAllowed(RoleHealthProfessional, ViewDoctors))
	assert.False(t, ViewAllowed(RoleHealthProfessional, ViewSchedule))
}

func TestValidMemberStatus(t *testing.T) {
	assert.True(t, ValidMemberStatus(MemberStatusNone))
	assert.True(t, ValidMemberStatus(MemberStatusPostponed))
	assert.True(t, ValidMemberStatus(MemberStatusDesisted))
	assert.False(t, ValidMemberStatus(MemberStatus("no-show")))
}
