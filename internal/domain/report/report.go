// Package report implements the shift-close report engine: deterministic
// in-memory aggregation of bills, orders and daily reports into
// revenue/discount/payment/category/customer-type breakdowns. The ledger
// repositories load the rows; everything here is pure and idempotent.
package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentBucket is one payment method's share of a window's revenue.
type PaymentBucket struct {
	Method           string          `json:"method"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TransactionCount int             `json:"transaction_count"`
}

// CategoryBucket is one article category's share of a shift's sales.
type CategoryBucket struct {
	Category      string          `json:"category"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	LineItemCount int             `json:"line_item_count"`
}

// CustomerTypeBucket groups billed revenue by the customer's type.
type CustomerTypeBucket struct {
	CustomerType     string          `json:"customer_type"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TransactionCount int             `json:"transaction_count"`
}

// ArticleSales is one article's sales volume over a range.
type ArticleSales struct {
	ArticleName  string          `json:"article_name"`
	QuantitySold int             `json:"quantity_sold"`
	TotalIncome  decimal.Decimal `json:"total_income"`
}

// EnhancedShiftReport is the full end-of-shift report returned to the UI
// and the PDF/receipt renderers: persisted totals plus the category and
// payment breakdowns for the shift window.
type EnhancedShiftReport struct {
	ReportID          string           `json:"report_id,omitempty"`
	ReportDate        time.Time        `json:"report_date"`
	TotalIncome       decimal.Decimal  `json:"total_income"`
	TotalOrders       int              `json:"total_orders"`
	TotalPax          int              `json:"total_pax"`
	TotalDiscount     decimal.Decimal  `json:"total_discount"`
	ShiftStartTime    time.Time        `json:"shift_start_time"`
	ShiftEndTime      *time.Time       `json:"shift_end_time,omitempty"`
	CategoryBreakdown []CategoryBucket `json:"category_breakdown"`
	PaymentBreakdown  []PaymentBucket  `json:"payment_breakdown"`
}

// SalesRangeReport aggregates persisted daily reports over a date range.
type SalesRangeReport struct {
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalOrders   int             `json:"total_orders"`
	TotalPax      int             `json:"total_pax"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
}

// CustomerTypeReport wraps a customer-type breakdown with its window.
type CustomerTypeReport struct {
	ReportDate *time.Time           `json:"report_date,omitempty"`
	StartDate  *time.Time           `json:"start_date,omitempty"`
	EndDate    *time.Time           `json:"end_date,omitempty"`
	Breakdown  []CustomerTypeBucket `json:"customer_type_breakdown"`
}

// PaymentMethodReport wraps a payment breakdown with its report date.
type PaymentMethodReport struct {
	ReportDate time.Time       `json:"report_date"`
	Breakdown  []PaymentBucket `json:"payment_method_breakdown"`
}
