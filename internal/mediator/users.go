package mediator

import (
	"context"

	"mediagenda/internal/converter"
	"mediagenda/internal/domain/entity"
)

// Users returns the account mirror, ordered by name. Intended for the
// administrator's users screen; the gate is advisory and enforced at the
// delivery layer.
func (m *Mediator) Users() []entity.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entity.User, len(m.users))
	copy(out, m.users)
	return out
}

func (m *Mediator) refreshUsers(ctx context.Context) {
	rows, err := m.store.Profiles.SelectAll(ctx)
	if err != nil {
		m.log.Warnf("Failed to refresh users, keeping previous mirror: %+v", err)
		return
	}

	users := make([]entity.User, 0, len(rows))
	for i := range rows {
		users = append(users, *converter.ProfileToUser(&rows[i]))
	}
	sortUsers(users)

	m.mu.Lock()
	m.users = users
	m.mu.Unlock()
}

// Settings returns the app_settings mirror.
func (m *Mediator) Settings() []entity.AppSetting {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entity.AppSetting, len(m.settings))
	copy(out, m.settings)
	return out
}

func (m *Mediator) refreshSettings(ctx context.Context) {
	rows, err := m.store.Settings.SelectAll(ctx)
	if err != nil {
		m.log.Warnf("Failed to refresh settings, keeping previous mirror: %+v", err)
		return
	}

	settings := make([]entity.AppSetting, 0, len(rows))
	for i := range rows {
		settings = append(settings, *converter.RowToAppSetting(&rows[i]))
	}

	m.mu.Lock()
	m.settings = settings
	m.mu.Unlock()
}
