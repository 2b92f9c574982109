package repository

import (
	"context"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/google/uuid"
)

// ArticleRepository defines menu article data access
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Article, error)
	GetByName(ctx context.Context, name string) (*entity.Article, error)
	List(ctx context.Context, activeOnly bool) ([]entity.Article, error)
	ListByCategory(ctx context.Context, category string) ([]entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
}
