package entity

import (
	"time"

	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a billed party. Customers are typically created ad
// hoc during corporate checkout; walk-in guests have no customer record.
type Customer struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name         string            `gorm:"size:100;not null" json:"name"`
	CustomerType enum.CustomerType `gorm:"default:0;index" json:"customer_type"`
	Contact      *string           `gorm:"size:100" json:"contact,omitempty"`
	VatNumber    *string           `gorm:"size:50" json:"vat_number,omitempty"`
	Address      *string           `gorm:"type:text" json:"address,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
