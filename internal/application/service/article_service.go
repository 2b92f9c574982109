package service

import (
	"context"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/gastrosys/pos-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ArticleService handles menu article operations
type ArticleService struct {
	articleRepo repository.ArticleRepository
}

// NewArticleService creates a new article service
func NewArticleService(articleRepo repository.ArticleRepository) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

// Menu returns all active articles grouped by the repository's
// category/name ordering
func (s *ArticleService) Menu(ctx context.Context) ([]entity.Article, error) {
	return s.articleRepo.List(ctx, true)
}

// ListByCategory returns the active articles of one category
func (s *ArticleService) ListByCategory(ctx context.Context, category string) ([]entity.Article, error) {
	return s.articleRepo.ListByCategory(ctx, category)
}

// GetArticle returns one article by id
func (s *ArticleService) GetArticle(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperror.NewNotFoundError("Article")
	}
	return article, nil
}

// AddArticleInput represents the add article input
type AddArticleInput struct {
	Name        string
	Category    string
	SubCategory *string
	Description *string
	Price       decimal.Decimal
}

// AddArticle adds a new menu article
func (s *ArticleService) AddArticle(ctx context.Context, input *AddArticleInput) (*entity.Article, error) {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if input.Category == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "category", Message: "category is required"})
	}
	if !input.Price.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "price must be greater than zero"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	existing, err := s.articleRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("article name already in use")
	}

	article := &entity.Article{
		Name:        input.Name,
		Category:    input.Category,
		SubCategory: input.SubCategory,
		Description: input.Description,
		Price:       input.Price,
		Active:      true,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// UpdatePrice changes an article's price. Captured order item prices are
// unaffected.
func (s *ArticleService) UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) (*entity.Article, error) {
	if !price.IsPositive() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "price must be greater than zero"},
		})
	}

	article, err := s.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Price = price
	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// DisableArticle soft-disables an article so it disappears from the menu
// without breaking historical order items.
func (s *ArticleService) DisableArticle(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	article, err := s.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if !article.Active {
		return nil, apperror.NewInvalidStateError(apperror.CodeInvalidState, "article is already disabled")
	}

	article.Active = false
	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}
