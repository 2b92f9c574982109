package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// PaymentMethod is the closed set of payment methods a bill can carry.
// Legacy data stored free-text labels; ParsePaymentMethod normalizes them
// and anything unrecognized collapses into Unknown.
type PaymentMethod int

const (
	PaymentMethodCash    PaymentMethod = 0
	PaymentMethodCard    PaymentMethod = 1
	PaymentMethodSplit   PaymentMethod = 2
	PaymentMethodUnknown PaymentMethod = 3
)

func (m PaymentMethod) String() string {
	if m < PaymentMethodCash || m > PaymentMethodUnknown {
		return "Unknown"
	}
	return [...]string{"Cash", "Card", "Split", "Unknown"}[m]
}

// ParsePaymentMethod maps a free-text label to a PaymentMethod,
// case-insensitively. Blank or unrecognized labels map to Unknown.
func ParsePaymentMethod(label string) PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "cash":
		return PaymentMethodCash
	case "card":
		return PaymentMethodCard
	case "split":
		return PaymentMethodSplit
	default:
		return PaymentMethodUnknown
	}
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	*m = ParsePaymentMethod(str)
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodUnknown
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
