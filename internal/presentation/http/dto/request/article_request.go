package request

import "github.com/shopspring/decimal"

// AddArticleRequest represents the add article request body
type AddArticleRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	SubCategory *string         `json:"sub_category"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}

// UpdatePriceRequest represents the update price request body
type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}
