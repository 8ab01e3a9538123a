package entity

// SessionState is the small state machine driven exclusively by the
// gateway's session-change notifications. A successful Login call only
// requests a transition; it does not perform one.
type SessionState string

const (
	SessionAnonymous      SessionState = "anonymous"
	SessionAuthenticating SessionState = "authenticating"
	SessionAuthenticated  SessionState = "authenticated"
	SessionError          SessionState = "error"
)

// ViewType identifies a screen in the presentation layer.
type ViewType string

const (
	ViewDashboard        ViewType = "dashboard"
	ViewPatients         ViewType = "patients"
	ViewDoctors          ViewType = "doctors"
	ViewSchedule         ViewType = "schedule"
	ViewUsers            ViewType = "users"
	ViewAppointmentsList ViewType = "appointments_list"
)

// AllowedViews lists the views a role may open.
func AllowedViews(role Role) []ViewType {
	if role == RoleHealthProfessional {
		return []ViewType{ViewDashboard, ViewPatients, ViewAppointmentsList}
	}
	return []ViewType{ViewDashboard, ViewPatients, ViewDoctors, ViewSchedule, ViewUsers, ViewAppointmentsList}
}

// DefaultView is where a freshly established session lands: the constrained
// role goes straight to its notifications view, the unconstrained role to
// the dashboard.
func DefaultView(role Role) ViewType {
	if role == RoleHealthProfessional {
		return ViewAppointmentsList
	}
	return ViewDashboard
}

// ViewAllowed reports whether the role may open the view.
func ViewAllowed(role Role, view ViewType) bool {
	for _, v := range AllowedViews(role) {
		if v == view {
			return true
		}
	}
	return false
}

// Session is a snapshot of the current auth state.
type Session struct {
	State       SessionState `json:"state"`
	CurrentUser *User        `json:"currentUser,omitempty"`
	CurrentView ViewType     `json:"currentView"`
}

func (s Session) IsAuthenticated() bool {
	return s.State == SessionAuthenticated
}
