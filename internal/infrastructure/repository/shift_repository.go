package repository

import (
	"context"
	"errors"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	domainRepo "github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) domainRepo.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, shift *entity.Shift) error {
	return dbFrom(ctx, r.db).Create(shift).Error
}

func (r *shiftRepository) GetActiveByEmployee(ctx context.Context, employeeID uuid.UUID) (*entity.Shift, error) {
	var shift entity.Shift
	err := dbFrom(ctx, r.db).
		Where("employee_id = ? AND end_time IS NULL", employeeID).
		Order("start_time DESC").
		First(&shift).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) Update(ctx context.Context, shift *entity.Shift) error {
	return dbFrom(ctx, r.db).Save(shift).Error
}

func (r *shiftRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]entity.Shift, error) {
	var shifts []entity.Shift
	err := dbFrom(ctx, r.db).
		Where("employee_id = ?", employeeID).
		Order("start_time DESC").
		Find(&shifts).Error
	return shifts, err
}
