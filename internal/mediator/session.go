package mediator

import (
	"context"
	"errors"
	"strings"
	"time"

	"mediagenda/internal/domain/entity"
	"mediagenda/internal/gateway"
	"mediagenda/internal/service"
)

// Login resolves the CPF to an account email, then authenticates against
// the gateway's credential check. It does NOT flip the authenticated flag:
// the session becomes authenticated only when the gateway's signed-in
// notification is consumed by the event loop. Callers must not assume
// Login returning nil implies Session().IsAuthenticated(). The transient
// authenticating and error states are only surfaced while no session is
// established; a failed attempt leaves an authenticated session intact.
func (m *Mediator) Login(ctx context.Context, cpf, password string) (*gateway.TokenPair, error) {
	m.setSessionState(entity.SessionAuthenticating)

	profile, err := m.lookupProfileByCPF(ctx, cpf)
	if err != nil {
		m.setSessionState(entity.SessionError)
		m.log.Warnf("Failed profile lookup for login: %+v", err)
		return nil, err
	}
	if profile == nil {
		m.setSessionState(entity.SessionError)
		return nil, ErrCPFNotFound
	}

	pair, err := m.auth.SignIn(ctx, profile.Email, password)
	if err != nil {
		m.setSessionState(entity.SessionError)
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, err
		}
		m.log.Warnf("Sign-in failed for %s: %+v", profile.Email, err)
		return nil, err
	}

	return pair, nil
}

// lookupProfileByCPF tries an exact match first, then a digit-stripped
// match. Stored identifiers predate a formatting change, so "047.231.913-21"
// and "04723191321" must resolve to the same account.
func (m *Mediator) lookupProfileByCPF(ctx context.Context, cpf string) (*gateway.ProfileRow, error) {
	profile, err := m.store.Profiles.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	stripped := stripNonDigits(cpf)
	if stripped == "" {
		return nil, nil
	}

	all, err := m.store.Profiles.SelectAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if stripNonDigits(all[i].CPF) == stripped {
			return &all[i], nil
		}
	}
	return nil, nil
}

// Logout invalidates the remote session. Mirrors are cleared when the
// signed-out notification arrives, not here.
func (m *Mediator) Logout(ctx context.Context) error {
	user, err := m.currentUser()
	if err != nil {
		return err
	}
	if err := m.auth.SignOut(ctx, user.ID); err != nil {
		m.log.Warnf("Failed to sign out: %+v", err)
		return err
	}
	return nil
}

// SignUp pre-checks for an existing account with the same CPF or email,
// creates the credential, waits for the backend trigger to materialize the
// profile, then refreshes the user mirror. The pre-check is advisory and
// racy; real uniqueness is enforced by the store's constraints.
func (m *Mediator) SignUp(ctx context.Context, input entity.User, password string) error {
	existing, err := m.lookupProfileByCPF(ctx, input.CPF)
	if err != nil {
		m.log.Warnf("Failed CPF pre-check on sign-up: %+v", err)
		return err
	}
	if existing != nil {
		return ErrCPFAlreadyExists
	}

	byEmail, err := m.store.Profiles.FindByEmail(ctx, input.Email)
	if err != nil {
		m.log.Warnf("Failed email pre-check on sign-up: %+v", err)
		return err
	}
	if byEmail != nil {
		return ErrEmailAlreadyExists
	}

	profile := &gateway.ProfileRow{
		Name:          input.Name,
		CPF:           input.CPF,
		Role:          string(input.Role),
		Establishment: input.Establishment,
	}

	if err := m.auth.SignUp(ctx, input.Email, password, profile); err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			return ErrEmailAlreadyExists
		}
		m.log.Warnf("Failed to sign up %s: %+v", input.Email, err)
		return err
	}

	// The profile row appears asynchronously.
	select {
	case <-time.After(m.cfg.SignupTriggerWait):
	case <-ctx.Done():
		return ctx.Err()
	}

	m.refreshUsers(ctx)
	return nil
}

// setSessionState records login progress for an anonymous caller. An
// established session is left untouched: only the signed-out notification
// takes it down, so a rejected login attempt cannot tear down whoever is
// already signed in.
func (m *Mediator) setSessionState(state entity.SessionState) {
	m.mu.Lock()
	if m.session.State != entity.SessionAuthenticated {
		m.session.State = state
	}
	m.mu.Unlock()
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
