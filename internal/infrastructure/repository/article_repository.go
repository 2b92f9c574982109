package repository

import (
	"context"
	"errors"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	domainRepo "github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *gorm.DB) domainRepo.ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	return dbFrom(ctx, r.db).Create(article).Error
}

func (r *articleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	var article entity.Article
	err := dbFrom(ctx, r.db).First(&article, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetByName(ctx context.Context, name string) (*entity.Article, error) {
	var article entity.Article
	err := dbFrom(ctx, r.db).First(&article, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List(ctx context.Context, activeOnly bool) ([]entity.Article, error) {
	var articles []entity.Article
	query := dbFrom(ctx, r.db).Model(&entity.Article{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Order("category ASC, name ASC").Find(&articles).Error
	return articles, err
}

func (r *articleRepository) ListByCategory(ctx context.Context, category string) ([]entity.Article, error) {
	var articles []entity.Article
	err := dbFrom(ctx, r.db).
		Where("category = ? AND active = ?", category, true).
		Order("name ASC").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(ctx context.Context, article *entity.Article) error {
	return dbFrom(ctx, r.db).Save(article).Error
}
