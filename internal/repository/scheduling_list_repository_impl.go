package repository

import (
	"context"
	"errors"

	"mediagenda/internal/gateway"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type schedulingListRepository struct {
	db *gorm.DB
}

func NewSchedulingListRepository(db *gorm.DB) gateway.SchedulingListStore {
	return &schedulingListRepository{db: db}
}

func (r *schedulingListRepository) Insert(ctx context.Context, row *gateway.SchedulingListRow) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *schedulingListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gateway.SchedulingListRow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

func (r *schedulingListRepository) SelectAll(ctx context.Context) ([]gateway.SchedulingListRow, error) {
	var rows []gateway.SchedulingListRow
	err := r.db.WithContext(ctx).Order("date ASC, name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type listMemberRepository struct {
	db *gorm.DB
}

func NewListMemberRepository(db *gorm.DB) gateway.ListMemberStore {
	return &listMemberRepository{db: db}
}

// Insert relies on the unique index over (list_id, patient_id): two racing
// adds for the same pair resolve at the database, not in the mirror.
func (r *listMemberRepository) Insert(ctx context.Context, row *gateway.ListMemberRow) error {
	err := r.db.WithContext(ctx).Create(row).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return gateway.ErrDuplicate
	}
	return err
}

func (r *listMemberRepository) Delete(ctx context.Context, listID, patientID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("list_id = ? AND patient_id = ?", listID, patientID).
		Delete(&gateway.ListMemberRow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

func (r *listMemberRepository) UpdateStatus(ctx context.Context, listID, patientID uuid.UUID, status *string) error {
	result := r.db.WithContext(ctx).Model(&gateway.ListMemberRow{}).
		Where("list_id = ? AND patient_id = ?", listID, patientID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

func (r *listMemberRepository) SelectAll(ctx context.Context) ([]gateway.ListMemberRow, error) {
	var rows []gateway.ListMemberRow
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
