package repository

import (
	"context"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/google/uuid"
)

// EmployeeRepository defines employee data access
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	GetByName(ctx context.Context, name string) (*entity.Employee, error)
	List(ctx context.Context) ([]entity.Employee, error)
}
