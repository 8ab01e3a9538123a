package repository

import (
	"context"

	"mediagenda/internal/gateway"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) gateway.PatientStore {
	return &patientRepository{db: db}
}

func (r *patientRepository) Insert(ctx context.Context, row *gateway.PatientRow) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *patientRepository) Update(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	result := r.db.WithContext(ctx).Model(&gateway.PatientRow{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gateway.PatientRow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

func (r *patientRepository) SelectAll(ctx context.Context) ([]gateway.PatientRow, error) {
	var rows []gateway.PatientRow
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
