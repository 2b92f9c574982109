package repository

import (
	"context"
	"errors"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	domainRepo "github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/gastrosys/pos-api/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new restaurant table repository
func NewTableRepository(db *gorm.DB) domainRepo.TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(ctx context.Context, table *entity.RestaurantTable) error {
	return dbFrom(ctx, r.db).Create(table).Error
}

func (r *tableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.RestaurantTable, error) {
	var table entity.RestaurantTable
	err := dbFrom(ctx, r.db).Preload("Employee").First(&table, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) List(ctx context.Context) ([]entity.RestaurantTable, error) {
	var tables []entity.RestaurantTable
	err := dbFrom(ctx, r.db).Preload("Employee").Order("number ASC").Find(&tables).Error
	return tables, err
}

// Update writes the table back asserting its version column; a stale
// version surfaces as a conflict so callers reload and retry.
func (r *tableRepository) Update(ctx context.Context, table *entity.RestaurantTable) error {
	current := table.Version
	table.Version = current + 1

	res := dbFrom(ctx, r.db).Model(&entity.RestaurantTable{}).
		Where("id = ? AND version = ?", table.ID, current).
		Select("occupied", "employee_id", "pax", "capacity", "number", "version", "updated_at").
		Updates(table)
	if res.Error != nil {
		table.Version = current
		return res.Error
	}
	if res.RowsAffected == 0 {
		table.Version = current
		return apperror.NewConflictError("table was modified by another request")
	}
	return nil
}

func (r *tableRepository) AnyOccupiedByEmployee(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&entity.RestaurantTable{}).
		Where("occupied = ? AND employee_id = ?", true, employeeID).
		Count(&count).Error
	return count > 0, err
}
