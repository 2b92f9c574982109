package repository

import (
	"context"
	"time"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/google/uuid"
)

// OrderRepository defines order data access
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// GetWithItems loads the order with its items, articles, table and
	// employee.
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// GetActiveByTable returns the table's single active (Pending or
	// Submitted) order, newest first, or nil.
	GetActiveByTable(ctx context.Context, tableID uuid.UUID) (*entity.Order, error)
	// GetLatestBilledByTable returns the table's most recent Billed order,
	// newest order date first, or nil.
	GetLatestBilledByTable(ctx context.Context, tableID uuid.UUID) (*entity.Order, error)
	// Update persists the order and asserts its optimistic-lock version.
	Update(ctx context.Context, order *entity.Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	// ListClosedByEmployeeInWindow returns the employee's Closed orders
	// whose order date falls in [start, end], with bills loaded. This is
	// the universe for shift-close totals.
	ListClosedByEmployeeInWindow(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]entity.Order, error)
	// ListByStatusInWindow returns orders in the window carrying any of
	// the given statuses, with items and articles loaded.
	ListByStatusInWindow(ctx context.Context, statuses []enum.OrderStatus, start time.Time, end *time.Time) ([]entity.Order, error)
}

// OrderItemRepository defines order line item data access
type OrderItemRepository interface {
	Create(ctx context.Context, item *entity.OrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error)
	CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
	Update(ctx context.Context, item *entity.OrderItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListBilledInRange returns items (articles loaded) whose owning
	// order has a bill issued in [start, end).
	ListBilledInRange(ctx context.Context, start, end time.Time) ([]entity.OrderItem, error)
}
