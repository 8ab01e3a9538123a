package repository

import (
	"context"

	"mediagenda/internal/gateway"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) gateway.DoctorStore {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Insert(ctx context.Context, row *gateway.DoctorRow) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *doctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gateway.DoctorRow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

func (r *doctorRepository) SelectAll(ctx context.Context) ([]gateway.DoctorRow, error) {
	var rows []gateway.DoctorRow
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
