package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"mediagenda/internal/gateway"
	"mediagenda/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid CPF or password")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

// AuthService implements the gateway's credential-based session API.
// Session establishment and teardown are announced on the Events channel;
// consumers must treat that channel, not the SignIn/SignOut return values,
// as the authoritative session-state trigger.
type AuthService struct {
	creds       gateway.CredentialStore
	profiles    gateway.ProfileStore
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	log         *logrus.Logger

	events chan gateway.SessionEvent

	// Tracks the trigger goroutines spawned by SignUp.
	wg sync.WaitGroup
}

func NewAuthService(
	creds gateway.CredentialStore,
	profiles gateway.ProfileStore,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	log *logrus.Logger,
	eventBuffer int,
) *AuthService {
	return &AuthService{
		creds:       creds,
		profiles:    profiles,
		jwtService:  jwtService,
		redisClient: redisClient,
		log:         log,
		events:      make(chan gateway.SessionEvent, eventBuffer),
	}
}

func (s *AuthService) Events() <-chan gateway.SessionEvent {
	return s.events
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*gateway.TokenPair, error) {
	cred, err := s.creds.FindByEmail(ctx, email)
	if err != nil {
		s.log.Warnf("Failed to find credential by email: %+v", err)
		return nil, err
	}
	if cred == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	profile, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		s.log.Warnf("Failed to find profile by email: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, profile.ID, profile.Email, profile.Role)
	if err != nil {
		return nil, err
	}

	s.emit(gateway.SessionEvent{Kind: gateway.SessionSignedIn, Profile: profile})

	return pair, nil
}

func (s *AuthService) SignUp(ctx context.Context, email, password string, profile *gateway.ProfileRow) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	cred := &gateway.CredentialRow{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.creds.Insert(ctx, cred); err != nil {
		if isDuplicateKeyError(err, "email") {
			return ErrEmailAlreadyExists
		}
		s.log.Warnf("Failed to create credential: %+v", err)
		return err
	}

	// The profile row is materialized asynchronously, mirroring the remote
	// backend's on-signup trigger. Callers wait and refetch rather than
	// assuming the profile exists when SignUp returns.
	row := *profile
	row.Email = email
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.profiles.Insert(context.Background(), &row); err != nil {
			s.log.Warnf("Failed to materialize profile for %s: %+v", email, err)
		}
	}()

	return nil
}

func (s *AuthService) SignOut(ctx context.Context, userID uuid.UUID) error {
	for _, pattern := range []string{
		fmt.Sprintf("access_token:%s:*", userID.String()),
		fmt.Sprintf("refresh_token:%s:*", userID.String()),
	} {
		keys, err := s.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			s.log.Warnf("Failed to get token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
				s.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}

	s.emit(gateway.SessionEvent{Kind: gateway.SessionSignedOut})

	return nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*gateway.TokenPair, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := s.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		s.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	if err := s.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		s.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return s.issueTokens(ctx, claims.UserID, claims.Email, claims.Role)
}

// Close waits for outstanding profile-trigger goroutines and closes the
// event channel.
func (s *AuthService) Close() {
	s.wg.Wait()
	close(s.events)
}

func (s *AuthService) issueTokens(ctx context.Context, userID uuid.UUID, email, role string) (*gateway.TokenPair, error) {
	accessToken, accessTokenID, err := s.jwtService.GenerateAccessToken(userID, email, role)
	if err != nil {
		s.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := s.jwtService.GenerateRefreshToken(userID, email, role)
	if err != nil {
		s.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID.String(), refreshTokenID)

	if err := s.redisClient.Set(ctx, accessKey, "valid", s.jwtService.GetAccessExpiry()).Err(); err != nil {
		s.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := s.redisClient.Set(ctx, refreshKey, "valid", s.jwtService.GetRefreshExpiry()).Err(); err != nil {
		s.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &gateway.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (s *AuthService) emit(event gateway.SessionEvent) {
	select {
	case s.events <- event:
	default:
		s.log.Warn("Session event channel full, dropping event")
	}
}

// Compile time check
var _ gateway.Auth = (*AuthService)(nil)

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
