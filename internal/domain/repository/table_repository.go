package repository

import (
	"context"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/google/uuid"
)

// TableRepository defines restaurant table data access
type TableRepository interface {
	Create(ctx context.Context, table *entity.RestaurantTable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.RestaurantTable, error)
	List(ctx context.Context) ([]entity.RestaurantTable, error)
	// Update persists the table and asserts its optimistic-lock version;
	// a lost update surfaces as a Conflict error.
	Update(ctx context.Context, table *entity.RestaurantTable) error
	// AnyOccupiedByEmployee reports whether the employee still has an
	// occupied table assigned. Shift close is blocked while true.
	AnyOccupiedByEmployee(ctx context.Context, employeeID uuid.UUID) (bool, error)
}
