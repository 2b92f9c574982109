package service

import (
	"context"
	"testing"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/gastrosys/pos-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type billFixture struct {
	svc          *BillService
	billRepo     *fakeBillRepo
	orderRepo    *fakeOrderRepo
	customerRepo *fakeCustomerRepo
}

func newBillFixture() *billFixture {
	billRepo := newFakeBillRepo()
	orderRepo := newFakeOrderRepo()
	customerRepo := newFakeCustomerRepo()
	return &billFixture{
		svc:          NewBillService(fakeTransactor{}, billRepo, orderRepo, customerRepo),
		billRepo:     billRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

func (f *billFixture) submittedOrder(lines ...entity.OrderItem) *entity.Order {
	return f.orderRepo.add(&entity.Order{
		Status: enum.OrderStatusSubmitted,
		Items:  lines,
	})
}

func line(qty int, price string) entity.OrderItem {
	return entity.OrderItem{Quantity: qty, Price: decimal.RequireFromString(price)}
}

func TestCreateBill_OnlySubmittedOrders(t *testing.T) {
	f := newBillFixture()
	order := f.orderRepo.add(&entity.Order{Status: enum.OrderStatusPending})

	_, err := f.svc.CreateBill(context.Background(), &CreateBillInput{OrderID: order.ID, PaymentMethod: "cash"})
	assertErrorCode(t, err, apperror.CodeInvalidState)
}

func TestCreateBill_ComputesTotalsAndBillsOrder(t *testing.T) {
	f := newBillFixture()
	discount := decimal.NewFromInt(10)
	order := f.submittedOrder(line(2, "10.00"), line(1, "5.00"))
	order.GlobalDiscount = &discount

	bill, err := f.svc.CreateBill(context.Background(), &CreateBillInput{OrderID: order.ID, PaymentMethod: "card"})
	if err != nil {
		t.Fatalf("create bill failed: %v", err)
	}

	if !bill.Subtotal.Equal(decimal.RequireFromString("25.00")) {
		t.Fatalf("expected subtotal 25.00, got %s", bill.Subtotal)
	}
	if !bill.Discount.Equal(decimal.RequireFromString("2.50")) {
		t.Fatalf("expected discount 2.50, got %s", bill.Discount)
	}
	if !bill.Total.Equal(decimal.RequireFromString("22.50")) {
		t.Fatalf("expected total 22.50, got %s", bill.Total)
	}
	if bill.PaymentMethod != enum.PaymentMethodCard {
		t.Fatalf("expected card method, got %s", bill.PaymentMethod)
	}
	if f.orderRepo.orders[order.ID].Status != enum.OrderStatusBilled {
		t.Fatal("order must move to billed")
	}
}

func TestCreateBill_DuplicateRejected(t *testing.T) {
	f := newBillFixture()
	order := f.submittedOrder(line(1, "10.00"))

	if _, err := f.svc.CreateBill(context.Background(), &CreateBillInput{OrderID: order.ID, PaymentMethod: "cash"}); err != nil {
		t.Fatalf("first bill failed: %v", err)
	}

	// Force the order back to submitted to isolate the duplicate guard.
	f.orderRepo.orders[order.ID].Status = enum.OrderStatusSubmitted

	_, err := f.svc.CreateBill(context.Background(), &CreateBillInput{OrderID: order.ID, PaymentMethod: "cash"})
	assertErrorCode(t, err, apperror.CodeConflict)
}

func TestCreateBill_SplitAmountsMustSumToTotal(t *testing.T) {
	f := newBillFixture()
	order := f.submittedOrder(line(1, "100.00"))
	cash := decimal.RequireFromString("30.00")
	card := decimal.RequireFromString("60.00")

	_, err := f.svc.CreateBill(context.Background(), &CreateBillInput{
		OrderID:         order.ID,
		PaymentMethod:   "split",
		SplitCashAmount: &cash,
		SplitCardAmount: &card,
	})
	assertErrorCode(t, err, apperror.CodeValidation)
}

func TestCreateBill_OneSidedSplitRejected(t *testing.T) {
	f := newBillFixture()
	order := f.submittedOrder(line(1, "100.00"))
	cash := decimal.RequireFromString("100.00")

	_, err := f.svc.CreateBill(context.Background(), &CreateBillInput{
		OrderID:         order.ID,
		PaymentMethod:   "split",
		SplitCashAmount: &cash,
	})
	assertErrorCode(t, err, apperror.CodeValidation)

	if f.orderRepo.orders[order.ID].Status != enum.OrderStatusSubmitted {
		t.Fatal("order must stay submitted when the split input is rejected")
	}
}

func TestRecordPayment_OneSidedSplitRejected(t *testing.T) {
	f := newBillFixture()
	bill := &entity.Bill{OrderID: uuid.New(), Total: decimal.RequireFromString("80.00")}
	f.billRepo.Create(context.Background(), bill)
	card := decimal.RequireFromString("80.00")

	_, err := f.svc.RecordPayment(context.Background(), bill.ID, &RecordPaymentInput{
		PaymentMethod:   "split",
		SplitCardAmount: &card,
	})
	assertErrorCode(t, err, apperror.CodeValidation)
}

func TestCreateBill_SplitAmountsOnlyForSplit(t *testing.T) {
	f := newBillFixture()
	order := f.submittedOrder(line(1, "100.00"))
	cash := decimal.RequireFromString("100.00")

	_, err := f.svc.CreateBill(context.Background(), &CreateBillInput{
		OrderID:         order.ID,
		PaymentMethod:   "cash",
		SplitCashAmount: &cash,
	})
	assertErrorCode(t, err, apperror.CodeValidation)
}

func TestProcessPayment_InsufficientAmount(t *testing.T) {
	f := newBillFixture()
	bill := &entity.Bill{OrderID: uuid.New(), Total: decimal.RequireFromString("50.00")}
	f.billRepo.Create(context.Background(), bill)

	_, err := f.svc.ProcessPayment(context.Background(), bill.ID, &ProcessPaymentInput{
		TotalPaid: decimal.RequireFromString("49.99"),
	})
	assertErrorCode(t, err, apperror.CodeInsufficientPay)
}

func TestProcessPayment_UnknownCustomerTypeRejected(t *testing.T) {
	f := newBillFixture()
	bill := &entity.Bill{OrderID: uuid.New(), Total: decimal.NewFromInt(10)}
	f.billRepo.Create(context.Background(), bill)

	_, err := f.svc.ProcessPayment(context.Background(), bill.ID, &ProcessPaymentInput{
		TotalPaid:    decimal.NewFromInt(10),
		CustomerType: "wholesale",
	})
	assertErrorCode(t, err, apperror.CodeValidation)
}

func TestProcessPayment_CorporateRequiresVatNumber(t *testing.T) {
	f := newBillFixture()
	bill := &entity.Bill{OrderID: uuid.New(), Total: decimal.NewFromInt(10)}
	f.billRepo.Create(context.Background(), bill)

	customer := f.customerRepo.add(&entity.Customer{
		Name:         "Acme",
		CustomerType: enum.CustomerTypeCorporate,
	})

	_, err := f.svc.ProcessPayment(context.Background(), bill.ID, &ProcessPaymentInput{
		TotalPaid:    decimal.NewFromInt(10),
		CustomerType: "corporate",
		CustomerID:   &customer.ID,
	})
	assertErrorCode(t, err, apperror.CodeValidation)
}

func TestProcessPayment_CorporateLinksCustomer(t *testing.T) {
	f := newBillFixture()
	bill := &entity.Bill{OrderID: uuid.New(), Total: decimal.NewFromInt(10)}
	f.billRepo.Create(context.Background(), bill)

	vat := "VAT-1234"
	customer := f.customerRepo.add(&entity.Customer{
		Name:         "Acme",
		CustomerType: enum.CustomerTypeCorporate,
		VatNumber:    &vat,
	})

	settled, err := f.svc.ProcessPayment(context.Background(), bill.ID, &ProcessPaymentInput{
		TotalPaid:    decimal.NewFromInt(10),
		CustomerType: "corporate",
		CustomerID:   &customer.ID,
	})
	if err != nil {
		t.Fatalf("corporate payment failed: %v", err)
	}
	if settled.CustomerID == nil || *settled.CustomerID != customer.ID {
		t.Fatal("corporate payment must link the customer to the bill")
	}
}

func TestProcessPayment_FinalClearsCustomerLink(t *testing.T) {
	f := newBillFixture()
	customerID := uuid.New()
	bill := &entity.Bill{OrderID: uuid.New(), Total: decimal.NewFromInt(10), CustomerID: &customerID}
	f.billRepo.Create(context.Background(), bill)

	settled, err := f.svc.ProcessPayment(context.Background(), bill.ID, &ProcessPaymentInput{
		TotalPaid: decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("final payment failed: %v", err)
	}
	if settled.CustomerID != nil {
		t.Fatal("final-customer payment must clear the customer link")
	}
}

func TestRecordPayment_SplitSumValidated(t *testing.T) {
	f := newBillFixture()
	bill := &entity.Bill{OrderID: uuid.New(), Total: decimal.RequireFromString("80.00"), PaymentMethod: enum.PaymentMethodCash}
	f.billRepo.Create(context.Background(), bill)

	cash := decimal.RequireFromString("30.00")
	card := decimal.RequireFromString("40.00")
	_, err := f.svc.RecordPayment(context.Background(), bill.ID, &RecordPaymentInput{
		PaymentMethod:   "split",
		SplitCashAmount: &cash,
		SplitCardAmount: &card,
	})
	assertErrorCode(t, err, apperror.CodeValidation)

	card = decimal.RequireFromString("50.00")
	updated, err := f.svc.RecordPayment(context.Background(), bill.ID, &RecordPaymentInput{
		PaymentMethod:   "split",
		SplitCashAmount: &cash,
		SplitCardAmount: &card,
	})
	if err != nil {
		t.Fatalf("record payment failed: %v", err)
	}
	if updated.PaymentMethod != enum.PaymentMethodSplit {
		t.Fatalf("expected split method, got %s", updated.PaymentMethod)
	}
	if updated.SplitCashAmount == nil || !updated.SplitCashAmount.Equal(cash) {
		t.Fatal("split cash component must be stored")
	}
}
