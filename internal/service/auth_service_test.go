package service

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"mediagenda/config"
	"mediagenda/internal/gateway"
	"mediagenda/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memCredentials struct {
	mu   sync.Mutex
	rows []gateway.CredentialRow
}

func (s *memCredentials) Insert(_ context.Context, row *gateway.CredentialRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].Email == row.Email {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_credentials_email"}
		}
	}
	row.ID = uuid.New()
	row.CreatedAt = time.Now()
	s.rows = append(s.rows, *row)
	return nil
}

func (s *memCredentials) FindByEmail(_ context.Context, email string) (*gateway.CredentialRow, error) {
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

func newTestAuthService(t *testing.T) (*AuthService, *memCredentials, *memProfiles, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	creds := &memCredentials{}
	profiles := &memProfiles{}
	svc := NewAuthService(creds, profiles, jwtService, client, log, 16)

	return svc, creds, profiles, client
}

func seedAccount(t *testing.T, creds *memCredentials, profiles *memProfiles, email string) gateway.ProfileRow {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, creds.Insert(context.Background(), &gateway.CredentialRow{
		Email:        email,
		PasswordHash: string(hash),
	}))

	profile := gateway.ProfileRow{
		Name:  "Ana Souza",
		CPF:   "11111111111",
		Role:  "administrator",
		Email: email,
	}
	require.NoError(t, profiles.Insert(context.Background(), &profile))
	return profile
}

func TestSignInIssuesTokensAndEmitsEvent(t *testing.T) {
	svc, creds, profiles, client := newTestAuthService(t)
	profile := seedAccount(t, creds, profiles, "ana@mediagenda.local")

	pair, err := svc.SignIn(context.Background(), profile.Email, "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	select {
	case event := <-svc.Events():
		assert.Equal(t, gateway.SessionSignedIn, event.Kind)
		require.NotNil(t, event.Profile)
		assert.Equal(t, profile.ID, event.Profile.ID)
	default:
		t.Fatal("expected a signed-in event")
	}

	// Both tokens were stored for revocation checks.
	keys, err := client.Keys(context.Background(), "access_token:"+profile.ID.String()+":*").Result()
	require.NoError(t, err)
	assert.Len(t, keys, 1)
	keys, err = client.Keys(context.Background(), "refresh_token:"+profile.ID.String()+":*").Result()
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestSignInWrongPassword(t *testing.T) {
	svc, creds, profiles, _ := newTestAuthService(t)
	profile := seedAccount(t, creds, profiles, "ana@mediagenda.local")

	_, err := svc.SignIn(context.Background(), profile.Email, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	select {
	case <-svc.Events():
		t.Fatal("failed sign-in must not emit an event")
	default:
	}
}

func TestSignInUnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	_, err := svc.SignIn(context.Background(), "nobody@mediagenda.local", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpMaterializesProfileAsynchronously(t *testing.T) {
	svc, creds, profiles, _ := newTestAuthService(t)

	profile := &gateway.ProfileRow{Name: "Novo", CPF: "22222222222", Role: "health_professional"}
	require.NoError(t, svc.SignUp(context.Background(), "novo@mediagenda.local", "secret", profile))

	cred, err := creds.FindByEmail(context.Background(), "novo@mediagenda.local")
	require.NoError(t, err)
	require.NotNil(t, cred)
	// The stored hash is never the raw password.
	assert.False(t, strings.Contains(cred.PasswordHash, "secret"))

	require.Eventually(t, func() bool {
		row, err := profiles.FindByEmail(context.Background(), "novo@mediagenda.local")
		return err == nil && row != nil
	}, 2*time.Second, 10*time.Millisecond, "profile row never materialized")
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, creds, profiles, _ := newTestAuthService(t)
	seedAccount(t, creds, profiles, "ana@mediagenda.local")

	err := svc.SignUp(context.Background(), "ana@mediagenda.local", "secret", &gateway.ProfileRow{Name: "Outra"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestSignOutRevokesTokensAndEmitsEvent(t *testing.T) {
	svc, creds, profiles, client := newTestAuthService(t)
	profile := seedAccount(t, creds, profiles, "ana@mediagenda.local")

	_, err := svc.SignIn(context.Background(), profile.Email, "secret")
	require.NoError(t, err)
	<-svc.Events() // drain the signed-in event

	require.NoError(t, svc.SignOut(context.Background(), profile.ID))

	keys, err := client.Keys(context.Background(), "*token:"+profile.ID.String()+":*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys)

	select {
	case event := <-svc.Events():
		assert.Equal(t, gateway.SessionSignedOut, event.Kind)
	default:
		t.Fatal("expected a signed-out event")
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	svc, creds, profiles, _ := newTestAuthService(t)
	profile := seedAccount(t, creds, profiles, "ana@mediagenda.local")

	pair, err := svc.SignIn(context.Background(), profile.Email, "secret")
	require.NoError(t, err)
	<-svc.Events()

	next, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	// The old refresh token was consumed.
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, creds, profiles, _ := newTestAuthService(t)
	profile := seedAccount(t, creds, profiles, "ana@mediagenda.local")

	pair, err := svc.SignIn(context.Background(), profile.Email, "secret")
	require.NoError(t, err)
	<-svc.Events()

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
