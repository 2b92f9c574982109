package request

import "github.com/shopspring/decimal"

// CreateBillRequest represents the create bill request body
type CreateBillRequest struct {
	OrderID         string           `json:"order_id" binding:"required,uuid"`
	PaymentMethod   string           `json:"payment_method"`
	SplitCashAmount *decimal.Decimal `json:"split_cash_amount"`
	SplitCardAmount *decimal.Decimal `json:"split_card_amount"`
}

// RecordPaymentRequest represents the record payment request body
type RecordPaymentRequest struct {
	PaymentMethod   string           `json:"payment_method" binding:"required"`
	SplitCashAmount *decimal.Decimal `json:"split_cash_amount"`
	SplitCardAmount *decimal.Decimal `json:"split_card_amount"`
}

// ProcessPaymentRequest represents the process payment request body
type ProcessPaymentRequest struct {
	TotalPaid    decimal.Decimal `json:"total_paid" binding:"required"`
	CustomerType string          `json:"customer_type"`
	CustomerID   *string         `json:"customer_id" binding:"omitempty,uuid"`
}
