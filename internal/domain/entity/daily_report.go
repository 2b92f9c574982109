package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Shift status values recorded on a daily report snapshot.
const (
	ShiftStatusOpen   = "Open"
	ShiftStatusClosed = "Closed"
)

// DailyReport is the immutable snapshot persisted when a shift is closed:
// revenue, order and guest totals for the shift window. One row per shift
// close; never updated afterwards.
type DailyReport struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReportDate           time.Time       `gorm:"type:date;not null;index" json:"report_date"`
	TotalIncome          decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_income"`
	TotalOrders          int             `gorm:"not null;default:0" json:"total_orders"`
	TotalPax             int             `gorm:"not null;default:0" json:"total_pax"`
	TotalDiscount        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_discount"`
	ShiftStatus          string          `gorm:"size:20;not null;default:'Closed'" json:"shift_status"`
	ShiftStartTime       time.Time       `gorm:"not null;index" json:"shift_start_time"`
	ShiftEndTime         *time.Time      `json:"shift_end_time,omitempty"`
	ShiftStartEmployeeID uuid.UUID       `gorm:"type:uuid;not null" json:"shift_start_employee_id"`
	ShiftEndEmployeeID   *uuid.UUID      `gorm:"type:uuid" json:"shift_end_employee_id,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new daily report
func (r *DailyReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DailyReport model
func (DailyReport) TableName() string {
	return "daily_reports"
}
