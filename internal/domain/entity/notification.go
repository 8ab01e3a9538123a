package entity

// Notification is a derived view row for the appointments_list screen:
// an appointment created by an administrator for a patient registered by the
// current user, annotated with that patient's scheduling-list status.
type Notification struct {
	Appointment Appointment  `json:"appointment"`
	Patient     Patient      `json:"patient"`
	Alert       MemberStatus `json:"alert,omitempty"`
}

// DashboardStats backs the dashboard screen. Patient count is role-scoped.
type DashboardStats struct {
	Patients           int `json:"patients"`
	TodaysAppointments int `json:"todaysAppointments"`
	Doctors            int `json:"doctors"`
	SchedulingLists    int `json:"schedulingLists"`
}
