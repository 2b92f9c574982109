package request

import "github.com/shopspring/decimal"

// CreateOrderRequest represents the create order request body
type CreateOrderRequest struct {
	TableID    string  `json:"table_id" binding:"required,uuid"`
	CustomerID *string `json:"customer_id" binding:"omitempty,uuid"`
	PaxAmount  int     `json:"pax_amount" binding:"omitempty,min=1"`
}

// AssignCustomerRequest represents the assign customer request body
type AssignCustomerRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
}

// GlobalDiscountRequest represents the set global discount request body
type GlobalDiscountRequest struct {
	Discount decimal.Decimal `json:"discount" binding:"required"`
}

// AddOrderItemRequest represents the add order item request body
type AddOrderItemRequest struct {
	ArticleID string           `json:"article_id" binding:"required,uuid"`
	Quantity  int              `json:"quantity" binding:"required,min=1"`
	Comment   *string          `json:"comment"`
	Discount  *decimal.Decimal `json:"discount"`
}

// UpdateItemQuantityRequest represents the update quantity request body
type UpdateItemQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
