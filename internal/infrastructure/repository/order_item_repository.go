package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	domainRepo "github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository creates a new order item repository
func NewOrderItemRepository(db *gorm.DB) domainRepo.OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) Create(ctx context.Context, item *entity.OrderItem) error {
	return dbFrom(ctx, r.db).Create(item).Error
}

func (r *orderItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error) {
	var item entity.OrderItem
	err := dbFrom(ctx, r.db).Preload("Article").First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := dbFrom(ctx, r.db).
		Preload("Article").
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *orderItemRepository) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&entity.OrderItem{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	return count, err
}

func (r *orderItemRepository) Update(ctx context.Context, item *entity.OrderItem) error {
	return dbFrom(ctx, r.db).Save(item).Error
}

func (r *orderItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.OrderItem{}, "id = ?", id).Error
}

// ListBilledInRange joins items to bills through their orders so the
// sales breakdown only counts lines that reached a bill.
func (r *orderItemRepository) ListBilledInRange(ctx context.Context, start, end time.Time) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := dbFrom(ctx, r.db).
		Preload("Article").
		Joins("JOIN bills ON bills.order_id = order_items.order_id").
		Where("bills.issue_date >= ? AND bills.issue_date < ?", start, end).
		Order("order_items.created_at ASC").
		Find(&items).Error
	return items, err
}
