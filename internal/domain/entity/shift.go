package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shift is a bounded working interval for one employee. At most one row
// per employee has EndTime null (partial unique index at the store layer).
type Shift struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;index" json:"employee_id"`
	StartTime  time.Time  `gorm:"not null" json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relationships
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// Active reports whether the shift is still open.
func (s *Shift) Active() bool {
	return s.EndTime == nil
}

// BeforeCreate generates a UUID before creating a new shift
func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shift model
func (Shift) TableName() string {
	return "shifts"
}
