package entity

import "github.com/shopspring/decimal"

// Receipt is the print-ready projection of a bill, assembled by the
// printer service and rendered to ESC/POS. It is never persisted.
type Receipt struct {
	Header        ReceiptHeader   `json:"header"`
	ReceiptNo     string          `json:"receipt_no"`
	Date          string          `json:"date"`
	TableNumber   int             `json:"table_number,omitempty"`
	Waiter        string          `json:"waiter,omitempty"`
	Customer      string          `json:"customer,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Items         []ReceiptItem   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
}

// ReceiptHeader carries the venue details printed at the top of a receipt
type ReceiptHeader struct {
	VenueName string `json:"venue_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReceiptItem is one printed line of a receipt
type ReceiptItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}
