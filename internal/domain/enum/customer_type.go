package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// CustomerType classifies a customer for billing and reporting.
// Walk-in guests without a customer record are reported under the
// canonical "Final Customer" bucket.
type CustomerType int

const (
	CustomerTypeFinal     CustomerType = 0
	CustomerTypeCorporate CustomerType = 1
)

// FinalCustomerLabel is the canonical bucket label for bills without a
// linked customer or with a blank type.
const FinalCustomerLabel = "Final Customer"

func (t CustomerType) String() string {
	if t < CustomerTypeFinal || t > CustomerTypeCorporate {
		return FinalCustomerLabel
	}
	return [...]string{FinalCustomerLabel, "Corporate"}[t]
}

// ParseCustomerType maps a label to a CustomerType. Blank and legacy
// labels ("End Customer", "Final", "Unknown") all mean Final.
func ParseCustomerType(label string) (CustomerType, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "final", "final customer", "end customer", "unknown":
		return CustomerTypeFinal, true
	case "corporate":
		return CustomerTypeCorporate, true
	default:
		return CustomerTypeFinal, false
	}
}

func (t CustomerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *CustomerType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = CustomerType(i)
		return nil
	}
	parsed, _ := ParseCustomerType(str)
	*t = parsed
	return nil
}

func (t CustomerType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *CustomerType) Scan(value interface{}) error {
	if value == nil {
		*t = CustomerTypeFinal
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = CustomerType(v)
	case int:
		*t = CustomerType(v)
	}
	return nil
}
