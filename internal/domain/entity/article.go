package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Article represents a menu item. Articles are soft-disabled via the
// Active flag, never hard-deleted, so historical order items keep their
// reference.
type Article struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"size:100;unique;not null" json:"name"`
	Category    string          `gorm:"size:50;not null;index" json:"category"`
	SubCategory *string         `gorm:"size:50" json:"sub_category,omitempty"`
	Description *string         `gorm:"size:255" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Active      bool            `gorm:"default:true" json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new article
func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Article model
func (Article) TableName() string {
	return "articles"
}
