package repository

import (
	"context"
	"errors"

	"mediagenda/internal/gateway"

	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) gateway.ProfileStore {
	return &profileRepository{db: db}
}

func (r *profileRepository) Insert(ctx context.Context, row *gateway.ProfileRow) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *profileRepository) FindByCPF(ctx context.Context, cpf string) (*gateway.ProfileRow, error) {
	var row gateway.ProfileRow
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*gateway.ProfileRow, error) {
	var row gateway.ProfileRow
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *profileRepository) SelectAll(ctx context.Context) ([]gateway.ProfileRow, error) {
	var rows []gateway.ProfileRow
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type credentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) gateway.CredentialStore {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) Insert(ctx context.Context, row *gateway.CredentialRow) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *credentialRepository) FindByEmail(ctx context.Context, email string) (*gateway.CredentialRow, error) {
	var row gateway.CredentialRow
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
