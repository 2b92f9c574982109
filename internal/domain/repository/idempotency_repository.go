package repository

import (
	"context"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/google/uuid"
)

// IdempotencyRepository defines idempotency key data access
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, employeeID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, k *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
