package mediator

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"mediagenda/config"
	"mediagenda/internal/domain/entity"
	"mediagenda/internal/gateway"
	"mediagenda/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// In-memory stand-ins for the remote store. Inserts assign ids and
// timestamps the way the real store does; a settable selectErr simulates a
// failing refetch.

type memPatients struct {
	mu        sync.Mutex
	rows      []gateway.PatientRow
	selectErr error
}

func (s *memPatients) Insert(_ context.Context, row *gateway.PatientRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row.ID = uuid.New()
	row.CreatedAt = time.Now()
	s.rows = append(s.rows, *row)
	return nil
}

func (s *memPatients) Update(_ context.Context, id uuid.UUID, columns map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID != id {
			continue
		}
		for k, v := range columns {
			value, _ := v.(string)
			switch k {
			case "name":
				s.rows[i].Name = value
			case "cpf":
				s.rows[i].CPF = value
			case "phone":
				s.rows[i].Phone = value
			case "basic_health_unit":
				s.rows[i].BasicHealthUnit = value
			case "address":
				s.rows[i].Address = value
			case "sus_card":
				s.rows[i].SUSCard = value
			case "community_agent":
				s.rows[i].CommunityAgent = value
			case "doctor_type":
				s.rows[i].DoctorType = value
			}
		}
		return nil
	}
	return gateway.ErrNotFound
}

func (s *memPatients) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return gateway.ErrNotFound
}

func (s *memPatients) SelectAll(_ context.Context) ([]gateway.PatientRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectErr != nil {
		return nil, s.selectErr
	}
	out := make([]gateway.PatientRow, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *memPatients) setSelectErr(err error) {
	s.mu.Lock()
	s.selectErr = err
	s.mu.Unlock()
}

type memDoctors struct {
	mu   sync.Mutex
	rows []gateway.DoctorRow
}

func (s *memDoctors) Insert(_ context.Context, row *gateway.DoctorRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row.ID = uuid.New()
	row.CreatedAt = time.Now()
	s.rows = append(s.rows, *row)
	return nil
}

func (s *memDoctors) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return gateway.ErrNotFound
}

func (s *memDoctors) SelectAll(_ context.Context) ([]gateway.DoctorRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gateway.DoctorRow, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

type memAppointments struct {
	mu   sync.Mutex
	rows []gateway.AppointmentRow
}

func (s *memAppointments) Insert(_ context.Context, row *gateway.AppointmentRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row.ID = uuid.New()
	row.CreatedAt = time.Now()
	s.rows = append(s.rows, *row)
	return nil
}

func (s *memAppointments) Update(_ context.Context, id uuid.UUID, columns map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID != id {
			continue
		}
		if status, ok := columns["status"].(string); ok {
			s.rows[i].Status = status
		}
		return nil
	}
	return gateway.ErrNotFound
}

func (s *memAppointments) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return gateway.ErrNotFound
}

func (s *memAppointments) SelectAll(_ context.Context) ([]gateway.AppointmentRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gateway.AppointmentRow, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *memAppointments) all() []gateway.AppointmentRow {
	rows, _ := s.SelectAll(context.Background())
	return rows
}

type memSchedulingLists struct {
	mu   sync.Mutex
	rows []gateway.SchedulingListRow
}

func (s *memSchedulingLists) Insert(_ context.Context, row *gateway.SchedulingListRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row.ID = uuid.New()
	row.CreatedAt = time.Now()
	s.rows = append(s.rows, *row)
	return nil
}

func (s *memSchedulingLists) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return gateway.ErrNotFound
}

func (s *memSchedulingLists) SelectAll(_ context.Context) ([]gateway.SchedulingListRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gateway.SchedulingListRow, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

type memListMembers struct {
	mu   sync.Mutex
	rows []gateway.ListMemberRow
}

func (s *memListMembers) Insert(_ context.Context, row *gateway.ListMemberRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ListID == row.ListID && s.rows[i].PatientID == row.PatientID {
			return gateway.ErrDuplicate
		}
	}
	row.ID = uuid.New()
	row.CreatedAt = time.Now()
	s.rows = append(s.rows, *row)
	return nil
}

func (s *memListMembers) Delete(_ context.Context, listID, patientID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ListID == listID && s.rows[i].PatientID == patientID {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return gateway.ErrNotFound
}

func (s *memListMembers) UpdateStatus(_ context.Context, listID, patientID uuid.UUID, status *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ListID == listID && s.rows[i].PatientID == patientID {
			s.rows[i].Status = status
			return nil
		}
	}
	return gateway.ErrNotFound
}

func (s *memListMembers) SelectAll(_ context.Context) ([]gateway.ListMemberRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gateway.ListMemberRow, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

type memProfiles struct {
	mu   sync.Mutex
	rows []gateway.ProfileRow
}

func (s *memProfiles) Insert(_ context.Context, row *gateway.ProfileRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.CreatedAt = time.Now()
	s.rows = append(s.rows, *row)
	return nil
}

func (s *memProfiles) FindByCPF(_ context.Context, cpf string) (*gateway.ProfileRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].CPF == cpf {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (s *memProfiles) FindByEmail(_ context.Context, email string) (*gateway.ProfileRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].Email == email {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (s *memProfiles) SelectAll(_ context.Context) ([]gateway.ProfileRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gateway.ProfileRow, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

type memSettings struct {
	mu   sync.Mutex
	rows []gateway.AppSettingRow
}

func (s *memSettings) Get(_ context.Context, key string) (*gateway.AppSettingRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].Key == key {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (s *memSettings) SelectAll(_ context.Context) ([]gateway.AppSettingRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gateway.AppSettingRow, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

// fakeAuth validates against an in-memory credential map and pushes session
// events the way the real auth service does. withholdEvents simulates the
// gap between a SignIn call resolving and the signed-in notification
// arriving.
type fakeAuth struct {
	mu             sync.Mutex
	creds          map[string]string
	profiles       *memProfiles
	events         chan gateway.SessionEvent
	triggerDelay   time.Duration
	withholdEvents bool
	wg             sync.WaitGroup
}

func newFakeAuth(profiles *memProfiles) *fakeAuth {
	return &fakeAuth{
		creds:    make(map[string]string),
		profiles: profiles,
		events:   make(chan gateway.SessionEvent, 16),
	}
}

func (a *fakeAuth) SignIn(ctx context.Context, email, password string) (*gateway.TokenPair, error) {
	a.mu.Lock()
	stored, ok := a.creds[email]
	withhold := a.withholdEvents
	a.mu.Unlock()

	if !ok || stored != password {
		return nil, service.ErrInvalidCredentials
	}

	profile, err := a.profiles.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, service.ErrInvalidCredentials
	}

	if !withhold {
		a.events <- gateway.SessionEvent{Kind: gateway.SessionSignedIn, Profile: profile}
	}

	return &gateway.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (a *fakeAuth) SignUp(_ context.Context, email, password string, profile *gateway.ProfileRow) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.creds[email]; exists {
		return service.ErrEmailAlreadyExists
	}
	a.creds[email] = password

	row := *profile
	row.Email = email
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		time.Sleep(a.triggerDelay)
		_ = a.profiles.Insert(context.Background(), &row)
	}()
	return nil
}

func (a *fakeAuth) SignOut(context.Context, uuid.UUID) error {
	a.events <- gateway.SessionEvent{Kind: gateway.SessionSignedOut}
	return nil
}

func (a *fakeAuth) Refresh(context.Context, string) (*gateway.TokenPair, error) {
	return &gateway.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (a *fakeAuth) Events() <-chan gateway.SessionEvent {
	return a.events
}

var _ gateway.Auth = (*fakeAuth)(nil)

type fixture struct {
	med          *Mediator
	auth         *fakeAuth
	patients     *memPatients
	doctors      *memDoctors
	appointments *memAppointments
	lists        *memSchedulingLists
	members      *memListMembers
	profiles     *memProfiles
	settings     *memSettings
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		patients:     &memPatients{},
		doctors:      &memDoctors{},
		appointments: &memAppointments{},
		lists:        &memSchedulingLists{},
		members:      &memListMembers{},
		profiles:     &memProfiles{},
		settings:     &memSettings{},
	}
	f.auth = newFakeAuth(f.profiles)
	f.auth.triggerDelay = 5 * time.Millisecond

	store := gateway.Store{
		Patients:        f.patients,
		Doctors:         f.doctors,
		Appointments:    f.appointments,
		SchedulingLists: f.lists,
		ListMembers:     f.members,
		Profiles:        f.profiles,
		Settings:        f.settings,
	}

	cfg := config.MediatorConfig{
		SignupTriggerWait:  50 * time.Millisecond,
		SessionEventBuffer: 16,
		RefreshTimeout:     time.Second,
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	f.med = New(cfg, log, store, f.auth)
	f.med.Start()
	t.Cleanup(func() {
		f.med.Stop()
		f.auth.wg.Wait()
	})

	return f
}

// seedAccount creates a profile row plus a matching credential.
func (f *fixture) seedAccount(t *testing.T, name, cpf string, role entity.Role, establishment string) gateway.ProfileRow {
	t.Helper()

	profile := gateway.ProfileRow{
		Name:          name,
		CPF:           cpf,
		Role:          string(role),
		Establishment: establishment,
		Email:         cpf + "@mediagenda.local",
	}
	require.NoError(t, f.profiles.Insert(context.Background(), &profile))

	f.auth.mu.Lock()
	f.auth.creds[profile.Email] = "secret"
	f.auth.mu.Unlock()

	return profile
}

// login signs the account in and waits for the session event to land.
func (f *fixture) login(t *testing.T, cpf string) entity.User {
	t.Helper()

	_, err := f.med.Login(context.Background(), cpf, "secret")
	require.NoError(t, err)

	// The user mirror is refreshed after the authenticated flag flips, and
	// the signed-in account is always present in it. Waiting for it keeps
	// assertions from racing the refresh.
	require.Eventually(t, func() bool {
		return f.med.Session().IsAuthenticated() && len(f.med.Users()) > 0
	}, 2*time.Second, 5*time.Millisecond, "session never became authenticated")

	session := f.med.Session()
	require.NotNil(t, session.CurrentUser)
	return *session.CurrentUser
}

func (f *fixture) seedPatient(t *testing.T, name string, registeredBy uuid.UUID, unit string) gateway.PatientRow {
	t.Helper()
	row := gateway.PatientRow{
		Name:            name,
		CPF:             "111.222.333-44",
		BasicHealthUnit: unit,
		RegisteredBy:    registeredBy,
	}
	require.NoError(t, f.patients.Insert(context.Background(), &row))
	return row
}

func (f *fixture) seedDoctor(t *testing.T, name, specialty string) gateway.DoctorRow {
	t.Helper()
	row := gateway.DoctorRow{Name: name, Specialty: specialty}
	require.NoError(t, f.doctors.Insert(context.Background(), &row))
	return row
}

func (f *fixture) seedList(t *testing.T, name, date string, doctorID uuid.UUID) gateway.SchedulingListRow {
	t.Helper()
	row := gateway.SchedulingListRow{Name: name, Date: date, DoctorID: doctorID, DoctorType: "Clínico Geral"}
	require.NoError(t, f.lists.Insert(context.Background(), &row))
	return row
}
