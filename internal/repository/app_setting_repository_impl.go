package repository

import (
	"context"
	"errors"

	"mediagenda/internal/gateway"

	"gorm.io/gorm"
)

type appSettingRepository struct {
	db *gorm.DB
}

func NewAppSettingRepository(db *gorm.DB) gateway.AppSettingStore {
	return &appSettingRepository{db: db}
}

func (r *appSettingRepository) Get(ctx context.Context, key string) (*gateway.AppSettingRow, error) {
	var row gateway.AppSettingRow
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *appSettingRepository) SelectAll(ctx context.Context) ([]gateway.AppSettingRow, error) {
	var rows []gateway.AppSettingRow
	err := r.db.WithContext(ctx).Order("key ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
