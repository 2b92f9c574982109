package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/gastrosys/pos-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newShiftFixture() (*ShiftService, *fakeShiftRepo, *fakeDailyReportRepo, *fakeOrderRepo, *fakeBillRepo, *fakeTableRepo, *fakeMailer) {
	shiftRepo := newFakeShiftRepo()
	reportRepo := &fakeDailyReportRepo{}
	orderRepo := newFakeOrderRepo()
	billRepo := newFakeBillRepo()
	tableRepo := newFakeTableRepo()
	mailer := &fakeMailer{}
	svc := NewShiftService(fakeTransactor{}, shiftRepo, reportRepo, orderRepo, billRepo, tableRepo, mailer, "manager@example.com")
	return svc, shiftRepo, reportRepo, orderRepo, billRepo, tableRepo, mailer
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError with code %s, got %v", code, err)
	}
	if appErr.ErrorCode != code {
		t.Fatalf("expected error code %s, got %s", code, appErr.ErrorCode)
	}
}

func TestStartShift_SecondStartRejected(t *testing.T) {
	svc, _, _, _, _, _, _ := newShiftFixture()
	employeeID := uuid.New()

	if _, err := svc.StartShift(context.Background(), employeeID); err != nil {
		t.Fatalf("first start failed: %v", err)
	}

	_, err := svc.StartShift(context.Background(), employeeID)
	assertErrorCode(t, err, apperror.CodeAlreadyActive)
}

func TestStartShift_DuplicateKeyMapsToAlreadyActive(t *testing.T) {
	svc, shiftRepo, _, _, _, _, _ := newShiftFixture()
	shiftRepo.createErr = gorm.ErrDuplicatedKey

	_, err := svc.StartShift(context.Background(), uuid.New())
	assertErrorCode(t, err, apperror.CodeAlreadyActive)
}

func TestEndShift_NoActiveShift(t *testing.T) {
	svc, _, _, _, _, _, _ := newShiftFixture()

	_, err := svc.EndShift(context.Background(), uuid.New())
	assertErrorCode(t, err, apperror.CodeNoActiveShift)
}

func TestEndShift_OpenTablesBlock(t *testing.T) {
	svc, shiftRepo, reportRepo, _, _, tableRepo, _ := newShiftFixture()
	employeeID := uuid.New()

	shift, err := svc.StartShift(context.Background(), employeeID)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	table := &entity.RestaurantTable{Number: 1, Capacity: 4}
	table.Open(employeeID, 2)
	tableRepo.add(table)

	_, err = svc.EndShift(context.Background(), employeeID)
	assertErrorCode(t, err, apperror.CodeOpenTablesExist)

	// The shift must remain open and no snapshot may exist.
	if shiftRepo.shifts[shift.ID].EndTime != nil {
		t.Fatal("shift must stay open when close is blocked")
	}
	if len(reportRepo.reports) != 0 {
		t.Fatal("no report snapshot may be persisted when close is blocked")
	}
}

func TestEndShift_PersistsSnapshotAndMails(t *testing.T) {
	svc, _, reportRepo, orderRepo, billRepo, _, mailer := newShiftFixture()
	employeeID := uuid.New()

	if _, err := svc.StartShift(context.Background(), employeeID); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	// Two closed billed orders inside the shift window.
	now := time.Now()
	food := &entity.Article{Name: "Burger", Category: "Food", Price: decimal.NewFromInt(10)}
	for _, total := range []string{"50.00", "70.00"} {
		amount, _ := decimal.NewFromString(total)
		order := orderRepo.add(&entity.Order{
			EmployeeID: employeeID,
			PaxAmount:  2,
			OrderDate:  now,
			Status:     enum.OrderStatusClosed,
			Items: []entity.OrderItem{
				{Quantity: 1, Price: amount, Article: food},
			},
			Bill: &entity.Bill{Total: amount, Discount: decimal.Zero},
		})
		billRepo.Create(context.Background(), &entity.Bill{
			OrderID:       order.ID,
			Total:         amount,
			PaymentMethod: enum.PaymentMethodCash,
			IssueDate:     now,
		})
	}

	rpt, err := svc.EndShift(context.Background(), employeeID)
	if err != nil {
		t.Fatalf("end failed: %v", err)
	}

	if len(reportRepo.reports) != 1 {
		t.Fatalf("expected one persisted snapshot, got %d", len(reportRepo.reports))
	}
	snapshot := reportRepo.reports[0]
	if snapshot.ShiftStatus != entity.ShiftStatusClosed {
		t.Fatalf("expected closed snapshot, got %s", snapshot.ShiftStatus)
	}
	if !snapshot.TotalIncome.Equal(decimal.RequireFromString("120.00")) {
		t.Fatalf("expected income 120.00, got %s", snapshot.TotalIncome)
	}
	if snapshot.TotalOrders != 2 || snapshot.TotalPax != 4 {
		t.Fatalf("expected 2 orders and 4 pax, got %d and %d", snapshot.TotalOrders, snapshot.TotalPax)
	}

	if rpt.ReportID != snapshot.ID.String() {
		t.Fatalf("enriched report must reference the snapshot, got %q", rpt.ReportID)
	}
	if rpt.ShiftEndTime == nil {
		t.Fatal("ended shift report must carry an end time")
	}
	if len(rpt.PaymentBreakdown) != 1 || rpt.PaymentBreakdown[0].Method != enum.PaymentMethodCash.String() {
		t.Fatalf("expected a cash payment bucket, got %+v", rpt.PaymentBreakdown)
	}
	if len(rpt.CategoryBreakdown) != 1 || rpt.CategoryBreakdown[0].Category != "Food" {
		t.Fatalf("expected a Food category bucket, got %+v", rpt.CategoryBreakdown)
	}

	if len(mailer.sent) != 1 || mailer.sent[0] != "manager@example.com" {
		t.Fatalf("expected report mailed to manager, got %v", mailer.sent)
	}
}

func TestCurrentShiftReport_PaymentsEmptyWhileOpen(t *testing.T) {
	svc, _, _, orderRepo, billRepo, _, _ := newShiftFixture()
	employeeID := uuid.New()

	if _, err := svc.StartShift(context.Background(), employeeID); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	billRepo.Create(context.Background(), &entity.Bill{
		OrderID:       uuid.New(),
		Total:         decimal.NewFromInt(30),
		PaymentMethod: enum.PaymentMethodCard,
		IssueDate:     time.Now(),
	})
	orderRepo.add(&entity.Order{
		EmployeeID: employeeID,
		PaxAmount:  3,
		OrderDate:  time.Now(),
		Status:     enum.OrderStatusClosed,
		Bill:       &entity.Bill{Total: decimal.NewFromInt(30), Discount: decimal.Zero},
	})

	rpt, err := svc.CurrentShiftReport(context.Background(), employeeID)
	if err != nil {
		t.Fatalf("current report failed: %v", err)
	}
	if rpt.ShiftEndTime != nil {
		t.Fatal("live report must not carry an end time")
	}
	if rpt.PaymentBreakdown == nil {
		t.Fatal("payment breakdown must be non-nil")
	}
	if len(rpt.PaymentBreakdown) != 0 {
		t.Fatalf("payment breakdown must stay empty while the shift is open, got %+v", rpt.PaymentBreakdown)
	}
	if rpt.ReportID != "" {
		t.Fatalf("live report must not reference a snapshot, got %q", rpt.ReportID)
	}
}

func TestReportByDate_MissingIsNotFound(t *testing.T) {
	svc, _, _, _, _, _, _ := newShiftFixture()

	_, err := svc.ReportByDate(context.Background(), time.Now())
	assertErrorCode(t, err, apperror.CodeNotFound)
}
