package enum

import "testing"

func TestParsePaymentMethod(t *testing.T) {
	cases := []struct {
		in       string
		expected PaymentMethod
	}{
		{"cash", PaymentMethodCash},
		{" Cash ", PaymentMethodCash},
		{"CARD", PaymentMethodCard},
		{"Split", PaymentMethodSplit},
		{"", PaymentMethodUnknown},
		{"voucher", PaymentMethodUnknown},
	}
	for _, tc := range cases {
		if got := ParsePaymentMethod(tc.in); got != tc.expected {
			t.Fatalf("ParsePaymentMethod(%q) expected %s, got %s", tc.in, tc.expected, got)
		}
	}
}

func TestParseCustomerType(t *testing.T) {
	cases := []struct {
		in         string
		expected   CustomerType
		recognized bool
	}{
		{"", CustomerTypeFinal, true},
		{"Final Customer", CustomerTypeFinal, true},
		{"End Customer", CustomerTypeFinal, true},
		{"unknown", CustomerTypeFinal, true},
		{"Corporate", CustomerTypeCorporate, true},
		{"CORPORATE", CustomerTypeCorporate, true},
		{"wholesale", CustomerTypeFinal, false},
	}
	for _, tc := range cases {
		got, recognized := ParseCustomerType(tc.in)
		if got != tc.expected || recognized != tc.recognized {
			t.Fatalf("ParseCustomerType(%q) expected (%s, %v), got (%s, %v)",
				tc.in, tc.expected, tc.recognized, got, recognized)
		}
	}
}

func TestParseEmployeeRole(t *testing.T) {
	if ParseEmployeeRole("Admin") != RoleAdmin {
		t.Fatal("expected admin")
	}
	if ParseEmployeeRole("manager") != RoleManager {
		t.Fatal("expected manager")
	}
	if ParseEmployeeRole("anything else") != RoleWaiter {
		t.Fatal("expected waiter fallback")
	}
}

func TestEmployeeRoleElevated(t *testing.T) {
	if RoleWaiter.Elevated() {
		t.Fatal("waiter must not be elevated")
	}
	if !RoleManager.Elevated() || !RoleAdmin.Elevated() {
		t.Fatal("manager and admin must be elevated")
	}
}

func TestOrderStatusLifecycle(t *testing.T) {
	if !OrderStatusPending.IsActive() || !OrderStatusSubmitted.IsActive() {
		t.Fatal("pending and submitted orders occupy their table")
	}
	if OrderStatusBilled.IsActive() || OrderStatusClosed.IsActive() {
		t.Fatal("billed and closed orders must not be active")
	}

	if !OrderStatusPending.CanTransitionTo(OrderStatusSubmitted) {
		t.Fatal("pending must submit")
	}
	if OrderStatusSubmitted.CanTransitionTo(OrderStatusPending) {
		t.Fatal("backward transition must be rejected")
	}
	if OrderStatusSubmitted.CanTransitionTo(OrderStatusClosed) {
		t.Fatal("skipping billed must be rejected")
	}
}

func TestString_OutOfRangeStoredValues(t *testing.T) {
	// Scan accepts any integer, so corrupt rows must not panic String.
	cases := []struct {
		got      string
		expected string
	}{
		{PaymentMethod(99).String(), "Unknown"},
		{PaymentMethod(-1).String(), "Unknown"},
		{CustomerType(7).String(), FinalCustomerLabel},
		{OrderStatus(42).String(), "Unknown"},
		{EmployeeRole(-3).String(), "waiter"},
	}
	for _, tc := range cases {
		if tc.got != tc.expected {
			t.Fatalf("expected %q for out-of-range value, got %q", tc.expected, tc.got)
		}
	}
}
