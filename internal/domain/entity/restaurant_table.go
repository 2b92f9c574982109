package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantTable represents a physical table in the dining room.
//
// Invariant: Occupied, EmployeeID and Pax are set together when a table is
// opened and all three are cleared when it is released. Version guards
// against concurrent mutations from independent request flows.
type RestaurantTable struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Number     int            `gorm:"unique;not null" json:"number"`
	Capacity   int            `gorm:"not null" json:"capacity"`
	Occupied   bool           `gorm:"default:false;index" json:"occupied"`
	EmployeeID *uuid.UUID     `gorm:"type:uuid;index" json:"employee_id,omitempty"`
	Pax        *int           `json:"pax,omitempty"`
	Version    int            `gorm:"default:0" json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// Open marks the table occupied and assigns the serving employee and
// party size.
func (t *RestaurantTable) Open(employeeID uuid.UUID, pax int) {
	t.Occupied = true
	t.EmployeeID = &employeeID
	t.Pax = &pax
}

// Release clears occupancy, the assigned employee and the party size.
func (t *RestaurantTable) Release() {
	t.Occupied = false
	t.EmployeeID = nil
	t.Pax = nil
}

// BeforeCreate generates a UUID before creating a new table
func (t *RestaurantTable) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RestaurantTable model
func (RestaurantTable) TableName() string {
	return "restaurant_tables"
}
