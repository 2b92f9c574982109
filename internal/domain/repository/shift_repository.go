package repository

import (
	"context"
	"time"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/google/uuid"
)

// ShiftRepository defines shift data access. The shift service is the
// sole writer.
type ShiftRepository interface {
	Create(ctx context.Context, shift *entity.Shift) error
	// GetActiveByEmployee returns the employee's shift with a null end
	// time, or nil. At most one exists.
	GetActiveByEmployee(ctx context.Context, employeeID uuid.UUID) (*entity.Shift, error)
	Update(ctx context.Context, shift *entity.Shift) error
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]entity.Shift, error)
}

// DailyReportRepository defines daily report snapshot access. Reports are
// written once at shift close and never mutated.
type DailyReportRepository interface {
	Create(ctx context.Context, r *entity.DailyReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyReport, error)
	// GetLatestByDate returns the most recent report for the calendar
	// date, ordered by shift start descending then id, or nil.
	GetLatestByDate(ctx context.Context, date time.Time) (*entity.DailyReport, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.DailyReport, error)
}
