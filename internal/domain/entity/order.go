package entity

import (
	"time"

	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a table's order. At most one active order (Pending or
// Submitted) exists per table; the store enforces this with a partial
// unique index on (table_id) over active statuses.
type Order struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	TableID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"table_id"`
	EmployeeID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"employee_id"`
	CustomerID     *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	PaxAmount      int              `gorm:"not null;default:1" json:"pax_amount"`
	OrderDate      time.Time        `gorm:"not null;index" json:"order_date"`
	Status         enum.OrderStatus `gorm:"default:0;index" json:"status"`
	GlobalDiscount *decimal.Decimal `gorm:"type:decimal(5,2)" json:"global_discount,omitempty"`
	Version        int              `gorm:"default:0" json:"-"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	// Relationships
	Table    *RestaurantTable `gorm:"foreignKey:TableID" json:"table,omitempty"`
	Employee *Employee        `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Customer *Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem      `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Bill     *Bill            `gorm:"foreignKey:OrderID" json:"bill,omitempty"`
}

// Subtotal sums the discounted line totals of all loaded items.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].LineTotal())
	}
	return total
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents a line item in an order. Price is the unit price
// captured at ordering time; line totals are always derived as
// quantity x price x (1 - discount%).
type OrderItem struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"order_id"`
	ArticleID uuid.UUID        `gorm:"type:uuid;not null;index" json:"article_id"`
	TableID   uuid.UUID        `gorm:"type:uuid;not null" json:"table_id"`
	Quantity  int              `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	Comment   *string          `gorm:"size:255" json:"comment,omitempty"`
	Discount  *decimal.Decimal `gorm:"type:decimal(5,2)" json:"discount,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	// Relationships
	Order   *Order   `gorm:"foreignKey:OrderID" json:"-"`
	Article *Article `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
}

// LineTotal returns quantity x unit price with the per-item discount
// percentage applied.
func (oi *OrderItem) LineTotal() decimal.Decimal {
	total := oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
	if oi.Discount != nil && oi.Discount.IsPositive() {
		factor := decimal.NewFromInt(1).Sub(oi.Discount.Div(decimal.NewFromInt(100)))
		total = total.Mul(factor)
	}
	return total.Round(2)
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
