package converter

import (
	"mediagenda/internal/domain/entity"
	"mediagenda/internal/gateway"
)

// ProfileToUser maps a profile row to the in-memory account model.
func ProfileToUser(row *gateway.ProfileRow) *entity.User {
	if row == nil {
		return nil
	}

	return &entity.User{
		ID:            row.ID,
		Name:          row.Name,
		Role:          entity.Role(row.Role),
		CPF:           row.CPF,
		Establishment: row.Establishment,
		Email:         row.Email,
		CreatedAt:     row.CreatedAt,
	}
}

func UserToProfile(u *entity.User) *gateway.ProfileRow {
	return &gateway.ProfileRow{
		Name:          u.Name,
		CPF:           u.CPF,
		Role:          string(u.Role),
		Establishment: u.Establishment,
		Email:         u.Email,
	}
}

func RowToAppSetting(row *gateway.AppSettingRow) *entity.AppSetting {
	if row == nil {
		return nil
	}
	return &entity.AppSetting{Key: row.Key, Value: row.Value}
}
