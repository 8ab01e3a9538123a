package repository

import (
	"context"

	"mediagenda/internal/gateway"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) gateway.AppointmentStore {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Insert(ctx context.Context, row *gateway.AppointmentRow) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *appointmentRepository) Update(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	result := r.db.WithContext(ctx).Model(&gateway.AppointmentRow{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gateway.AppointmentRow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) SelectAll(ctx context.Context) ([]gateway.AppointmentRow, error) {
	var rows []gateway.AppointmentRow
	err := r.db.WithContext(ctx).Order("date ASC, time ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
