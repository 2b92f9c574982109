package entity

import (
	"time"

	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee represents a member of staff who can open tables, take orders
// and work shifts. Login codes are stored bcrypt-hashed.
type Employee struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name          string            `gorm:"size:100;unique;not null" json:"name"`
	Role          enum.EmployeeRole `gorm:"default:0" json:"role"`
	LoginCodeHash string            `gorm:"size:255;not null" json:"-"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
