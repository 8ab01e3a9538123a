package gateway

import (
	"context"

	"github.com/google/uuid"
)

// SessionEventKind labels a session-state-change notification.
type SessionEventKind string

const (
	SessionSignedIn  SessionEventKind = "signed_in"
	SessionSignedOut SessionEventKind = "signed_out"
)

// SessionEvent is pushed by the auth service when a session is established
// or torn down. It is the authoritative trigger for populating or clearing
// the mirrors; a SignIn call resolving successfully does not by itself mean
// the session is live.
type SessionEvent struct {
	Kind    SessionEventKind
	Profile *ProfileRow
}

// TokenPair is the session material handed to the presentation layer.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Auth is the credential-based session API of the remote gateway.
type Auth interface {
	SignIn(ctx context.Context, email, password string) (*TokenPair, error)
	// SignUp creates the credential; the profile row is materialized
	// asynchronously by a backend trigger, not by this call.
	SignUp(ctx context.Context, email, password string, profile *ProfileRow) error
	SignOut(ctx context.Context, userID uuid.UUID) error
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Events delivers session-state-change notifications.
	Events() <-chan SessionEvent
}
