package entity

import (
	"time"

	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bill represents the settled amount for an order. Exactly one bill exists
// per order (unique index on order_id). Split cash/card amounts are only
// populated when the payment method is Split and must reconcile to Total.
type Bill struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID         uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	CustomerID      *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Subtotal        decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Discount        decimal.Decimal    `gorm:"type:decimal(10,2);not null;default:0" json:"discount"`
	Total           decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"total"`
	PaymentMethod   enum.PaymentMethod `gorm:"default:3" json:"payment_method"`
	SplitCashAmount *decimal.Decimal   `gorm:"type:decimal(10,2)" json:"split_cash_amount,omitempty"`
	SplitCardAmount *decimal.Decimal   `gorm:"type:decimal(10,2)" json:"split_card_amount,omitempty"`
	IssueDate       time.Time          `gorm:"not null;index" json:"issue_date"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`

	// Relationships
	Order    *Order    `gorm:"foreignKey:OrderID" json:"-"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}
