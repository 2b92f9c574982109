package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// EmployeeRole controls which elevated operations an employee may perform.
type EmployeeRole int

const (
	RoleWaiter  EmployeeRole = 0
	RoleManager EmployeeRole = 1
	RoleAdmin   EmployeeRole = 2
)

func (r EmployeeRole) String() string {
	if r < RoleWaiter || r > RoleAdmin {
		return "waiter"
	}
	return [...]string{"waiter", "manager", "admin"}[r]
}

// Elevated reports whether the role may mutate submitted orders
// (removing items from an order the kitchen already received).
func (r EmployeeRole) Elevated() bool {
	return r == RoleManager || r == RoleAdmin
}

// ParseEmployeeRole maps a label to an EmployeeRole, defaulting to waiter.
func ParseEmployeeRole(label string) EmployeeRole {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "admin":
		return RoleAdmin
	case "manager":
		return RoleManager
	default:
		return RoleWaiter
	}
}

func (r EmployeeRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *EmployeeRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*r = EmployeeRole(i)
		return nil
	}
	*r = ParseEmployeeRole(str)
	return nil
}

func (r EmployeeRole) Value() (driver.Value, error) {
	return int64(r), nil
}

func (r *EmployeeRole) Scan(value interface{}) error {
	if value == nil {
		*r = RoleWaiter
		return nil
	}
	switch v := value.(type) {
	case int64:
		*r = EmployeeRole(v)
	case int:
		*r = EmployeeRole(v)
	}
	return nil
}
