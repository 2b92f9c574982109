package repository

import (
	"context"
	"time"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// BillRepository defines bill data access
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Bill, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error)
	// ListByIssueRange returns bills issued in [start, end] with their
	// customers loaded; the universe for payment and customer-type
	// breakdowns.
	ListByIssueRange(ctx context.Context, start, end time.Time) ([]entity.Bill, error)
	Update(ctx context.Context, bill *entity.Bill) error
}
