package jwt

import (
	"testing"
	"time"

	"mediagenda/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(accessExpiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestService(15 * time.Minute)
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "ana@mediagenda.local", "administrator")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@mediagenda.local", claims.Email)
	assert.Equal(t, "administrator", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	svc := newTestService(15 * time.Minute)

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "ana@mediagenda.local", "administrator")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	svc := newTestService(15 * time.Minute)
	other := NewJWTService(config.JWTConfig{Secret: "another-secret", AccessExpiry: 15 * time.Minute})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "ana@mediagenda.local", "administrator")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateAccessToken(uuid.New(), "ana@mediagenda.local", "administrator")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTestService(15 * time.Minute)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
