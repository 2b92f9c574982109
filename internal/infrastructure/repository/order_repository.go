package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	domainRepo "github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/gastrosys/pos-api/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return dbFrom(ctx, r.db).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := dbFrom(ctx, r.db).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := dbFrom(ctx, r.db).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.created_at ASC")
		}).
		Preload("Items.Article").
		Preload("Table").
		Preload("Employee").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetActiveByTable(ctx context.Context, tableID uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := dbFrom(ctx, r.db).
		Where("table_id = ? AND status IN ?", tableID, []enum.OrderStatus{enum.OrderStatusPending, enum.OrderStatusSubmitted}).
		Order("order_date DESC").
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetLatestBilledByTable(ctx context.Context, tableID uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := dbFrom(ctx, r.db).
		Where("table_id = ? AND status = ?", tableID, enum.OrderStatusBilled).
		Order("order_date DESC").
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Update writes the order back asserting its version column.
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	current := order.Version
	order.Version = current + 1

	res := dbFrom(ctx, r.db).Model(&entity.Order{}).
		Where("id = ? AND version = ?", order.ID, current).
		Select("customer_id", "pax_amount", "status", "global_discount", "version", "updated_at").
		Updates(order)
	if res.Error != nil {
		order.Version = current
		return res.Error
	}
	if res.RowsAffected == 0 {
		order.Version = current
		return apperror.NewConflictError("order was modified by another request")
	}
	return nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return dbFrom(ctx, r.db).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepository) ListClosedByEmployeeInWindow(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := dbFrom(ctx, r.db).
		Preload("Bill").
		Where("employee_id = ? AND status = ? AND order_date >= ? AND order_date <= ?",
			employeeID, enum.OrderStatusClosed, start, end).
		Order("order_date ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListByStatusInWindow(ctx context.Context, statuses []enum.OrderStatus, start time.Time, end *time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	query := dbFrom(ctx, r.db).
		Preload("Items").
		Preload("Items.Article").
		Where("status IN ? AND order_date >= ?", statuses, start)
	if end != nil {
		query = query.Where("order_date <= ?", *end)
	}
	err := query.Order("order_date ASC").Find(&orders).Error
	return orders, err
}
