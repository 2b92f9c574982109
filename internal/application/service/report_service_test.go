package service

import (
	"context"
	"testing"
	"time"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newReportFixture() (*ReportService, *fakeDailyReportRepo, *fakeBillRepo, *fakeOrderRepo, *fakeOrderItemRepo) {
	reportRepo := &fakeDailyReportRepo{}
	billRepo := newFakeBillRepo()
	orderRepo := newFakeOrderRepo()
	orderItemRepo := newFakeOrderItemRepo()
	svc := NewReportService(reportRepo, billRepo, orderRepo, orderItemRepo)
	return svc, reportRepo, billRepo, orderRepo, orderItemRepo
}

func closedOrderAt(when time.Time, category string, qty int, unit string) *entity.Order {
	price, _ := decimal.NewFromString(unit)
	return &entity.Order{
		TableID:    uuid.New(),
		EmployeeID: uuid.New(),
		OrderDate:  when,
		Status:     enum.OrderStatusClosed,
		Items: []entity.OrderItem{
			{
				Quantity: qty,
				Price:    price,
				Article:  &entity.Article{Name: category + " item", Category: category},
			},
		},
	}
}

func TestCategoryBreakdownByDate_ClosedShiftBoundsWindow(t *testing.T) {
	svc, reportRepo, _, orderRepo, _ := newReportFixture()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := day.Add(17 * time.Hour)
	reportRepo.Create(context.Background(), &entity.DailyReport{
		ReportDate:     day,
		ShiftStartTime: day.Add(9 * time.Hour),
		ShiftEndTime:   &end,
	})

	orderRepo.add(closedOrderAt(day.Add(8*time.Hour), "Food", 1, "10.00"))   // before shift
	orderRepo.add(closedOrderAt(day.Add(12*time.Hour), "Food", 2, "10.00"))  // in window
	orderRepo.add(closedOrderAt(day.Add(19*time.Hour), "Drinks", 1, "5.00")) // after close

	buckets, err := svc.CategoryBreakdownByDate(context.Background(), day)
	if err != nil {
		t.Fatalf("breakdown failed: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("expected only the in-window category, got %d buckets", len(buckets))
	}
	if buckets[0].Category != "Food" || !buckets[0].TotalIncome.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("unexpected bucket %+v", buckets[0])
	}
}

func TestCategoryBreakdownByDate_OpenShiftIsOpenEnded(t *testing.T) {
	svc, reportRepo, _, orderRepo, _ := newReportFixture()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	reportRepo.Create(context.Background(), &entity.DailyReport{
		ReportDate:     day,
		ShiftStartTime: day.Add(9 * time.Hour),
	})

	orderRepo.add(closedOrderAt(day.Add(12*time.Hour), "Food", 2, "10.00"))
	orderRepo.add(closedOrderAt(day.Add(23*time.Hour), "Drinks", 1, "5.00"))

	buckets, err := svc.CategoryBreakdownByDate(context.Background(), day)
	if err != nil {
		t.Fatalf("breakdown failed: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected both categories while the shift is open, got %d buckets", len(buckets))
	}
}

func TestMostSoldArticles_WindowCoversWholeEndDay(t *testing.T) {
	svc, _, _, orderRepo, orderItemRepo := newReportFixture()
	orderItemRepo.ordersByID = orderRepo.orders

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	billedItem := func(issued time.Time, name string, qty int) {
		order := orderRepo.add(&entity.Order{
			TableID:    uuid.New(),
			EmployeeID: uuid.New(),
			OrderDate:  issued,
			Status:     enum.OrderStatusClosed,
			Bill:       &entity.Bill{IssueDate: issued},
		})
		orderItemRepo.Create(context.Background(), &entity.OrderItem{
			OrderID:  order.ID,
			Quantity: qty,
			Price:    decimal.RequireFromString("10.00"),
			Article:  &entity.Article{Name: name, Category: "Food"},
		})
	}

	billedItem(end.Add(23*time.Hour), "Burger", 3) // late on the end day
	billedItem(end.AddDate(0, 0, 1), "Fries", 5)   // next day, outside

	articles, err := svc.MostSoldArticles(context.Background(), start, end)
	if err != nil {
		t.Fatalf("most sold failed: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("expected only the end-day sale, got %d entries", len(articles))
	}
	if articles[0].ArticleName != "Burger" || articles[0].QuantitySold != 3 {
		t.Fatalf("unexpected ranking entry %+v", articles[0])
	}
}
