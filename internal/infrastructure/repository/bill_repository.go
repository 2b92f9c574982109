package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	domainRepo "github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/gastrosys/pos-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return dbFrom(ctx, r.db).Create(bill).Error
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := dbFrom(ctx, r.db).Preload("Customer").First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := dbFrom(ctx, r.db).Preload("Customer").First(&bill, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Bill{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Customer").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("issue_date DESC").
		Find(&bills).Error

	return bills, total, err
}

func (r *billRepository) ListByIssueRange(ctx context.Context, start, end time.Time) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := dbFrom(ctx, r.db).
		Preload("Customer").
		Where("issue_date >= ? AND issue_date <= ?", start, end).
		Order("issue_date ASC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	return dbFrom(ctx, r.db).Save(bill).Error
}
