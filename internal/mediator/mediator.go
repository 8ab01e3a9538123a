package mediator

import (
	"context"
	"errors"
	"sort"
	"sync"

	"mediagenda/config"
	"mediagenda/internal/converter"
	"mediagenda/internal/domain/entity"
	"mediagenda/internal/gateway"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotAuthenticated      = errors.New("no authenticated session")
	ErrPatientNotFound       = errors.New("patient not found")
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrListNotFound          = errors.New("scheduling list not found")
	ErrNotAMember            = errors.New("patient is not a member of the list")
	ErrAlreadyAMember        = errors.New("patient is already a member of the list")
	ErrInvalidMemberStatus   = errors.New("invalid member status")
	ErrEmptyPatch            = errors.New("no fields to update")
	ErrCPFNotFound           = errors.New("no account found for this CPF")
	ErrCPFAlreadyExists      = errors.New("CPF already registered")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrViewNotAllowed        = errors.New("view not allowed for this role")
	ErrInvalidStatus         = errors.New("invalid appointment status")
)

// Mediator owns the in-memory mirrors of every remote collection and
// mediates all mutations. It is the single writer: everything else reads
// snapshots and issues commands through its methods. Mirrors are caches;
// the remote store is the system of record.
type Mediator struct {
	cfg   config.MediatorConfig
	log   *logrus.Logger
	store gateway.Store
	auth  gateway.Auth

	mu           sync.RWMutex
	patients     []entity.Patient
	doctors      []entity.Doctor
	appointments []entity.Appointment
	lists        []entity.SchedulingList
	users        []entity.User
	settings     []entity.AppSetting

	// Secondary index: patient id -> ids of lists the patient belongs to.
	// Maintained alongside the list mirror so notification rendering does
	// not rescan every list.
	listsByPatient map[uuid.UUID][]uuid.UUID

	session entity.Session

	stop chan struct{}
	wg   sync.WaitGroup
}

func New(cfg config.MediatorConfig, log *logrus.Logger, store gateway.Store, auth gateway.Auth) *Mediator {
	return &Mediator{
		cfg:            cfg,
		log:            log,
		store:          store,
		auth:           auth,
		listsByPatient: make(map[uuid.UUID][]uuid.UUID),
		session:        entity.Session{State: entity.SessionAnonymous, CurrentView: entity.ViewDashboard},
		stop:           make(chan struct{}),
	}
}

// Start launches the session-event loop. The loop is the only place the
// authenticated flag flips and the only trigger for populating or clearing
// the mirrors.
func (m *Mediator) Start() {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		for {
			select {
			case event, ok := <-m.auth.Events():
				if !ok {
					return
				}
				m.handleSessionEvent(event)
			case <-m.stop:
				return
			}
		}
	}()
}

// Stop terminates the event loop.
func (m *Mediator) Stop() {
	close(m.stop)
	m.wg.Wait()
}

func (m *Mediator) handleSessionEvent(event gateway.SessionEvent) {
	switch event.Kind {
	case gateway.SessionSignedIn:
		user := converter.ProfileToUser(event.Profile)
		if user == nil {
			m.log.Warn("Signed-in event without profile, ignoring")
			return
		}
		m.mu.Lock()
		m.session = entity.Session{
			State:       entity.SessionAuthenticated,
			CurrentUser: user,
			CurrentView: entity.DefaultView(user.Role),
		}
		m.mu.Unlock()
		m.log.Infof("Session established for %s (%s)", user.Name, user.Role)

		ctx, cancel := context.WithTimeout(context.Background(), m.cfg.RefreshTimeout)
		defer cancel()
		m.RefreshAll(ctx)

	case gateway.SessionSignedOut:
		m.mu.Lock()
		m.patients = nil
		m.doctors = nil
		m.appointments = nil
		m.lists = nil
		m.users = nil
		m.settings = nil
		m.listsByPatient = make(map[uuid.UUID][]uuid.UUID)
		m.session = entity.Session{State: entity.SessionAnonymous, CurrentView: entity.ViewDashboard}
		m.mu.Unlock()
		m.log.Info("Session ended, mirrors cleared")
	}
}

// Session returns a snapshot of the current auth state.
func (m *Mediator) Session() entity.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session := m.session
	if session.CurrentUser != nil {
		user := *session.CurrentUser
		session.CurrentUser = &user
	}
	return session
}

// SetCurrentView switches the active screen, gated by the current role.
func (m *Mediator) SetCurrentView(view entity.ViewType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.CurrentUser == nil {
		return ErrNotAuthenticated
	}
	if !entity.ViewAllowed(m.session.CurrentUser.Role, view) {
		return ErrViewNotAllowed
	}
	m.session.CurrentView = view
	return nil
}

// RefreshAll refetches every mirror. Individual refetch failures are logged
// and leave the previous mirror untouched; stale data beats empty state.
func (m *Mediator) RefreshAll(ctx context.Context) {
	m.refreshPatients(ctx)
	m.refreshDoctors(ctx)
	m.refreshAppointments(ctx)
	m.refreshSchedulingLists(ctx)
	m.refreshUsers(ctx)
	m.refreshSettings(ctx)
}

func (m *Mediator) currentUser() (*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session.State != entity.SessionAuthenticated || m.session.CurrentUser == nil {
		return nil, ErrNotAuthenticated
	}
	user := *m.session.CurrentUser
	return &user, nil
}

func sortPatients(patients []entity.Patient) {
	sort.SliceStable(patients, func(i, j int) bool {
		return patients[i].Name < patients[j].Name
	})
}

func sortDoctors(doctors []entity.Doctor) {
	sort.SliceStable(doctors, func(i, j int) bool {
		return doctors[i].Name < doctors[j].Name
	})
}

func sortUsers(users []entity.User) {
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Name < users[j].Name
	})
}

func sortAppointments(appointments []entity.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date < appointments[j].Date
		}
		return appointments[i].Time < appointments[j].Time
	})
}

func sortSchedulingLists(lists []entity.SchedulingList) {
	sort.SliceStable(lists, func(i, j int) bool {
		if lists[i].Date != lists[j].Date {
			return lists[i].Date < lists[j].Date
		}
		return lists[i].Name < lists[j].Name
	})
}
