package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the lifecycle state of an order.
// Transitions are forward-only: Pending -> Submitted -> Billed -> Closed.
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 0
	OrderStatusSubmitted OrderStatus = 1
	OrderStatusBilled    OrderStatus = 2
	OrderStatusClosed    OrderStatus = 3
)

func (s OrderStatus) String() string {
	if s < OrderStatusPending || s > OrderStatusClosed {
		return "Unknown"
	}
	return [...]string{"Pending", "Submitted", "Billed", "Closed"}[s]
}

// IsActive reports whether an order in this status still occupies its table.
// At most one active order may exist per table.
func (s OrderStatus) IsActive() bool {
	return s == OrderStatusPending || s == OrderStatusSubmitted
}

// CanTransitionTo reports whether the status may move to next. Backward
// transitions are never allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return next == s+1
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = OrderStatusPending
	case "Submitted":
		*s = OrderStatusSubmitted
	case "Billed":
		*s = OrderStatusBilled
	case "Closed":
		*s = OrderStatusClosed
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
