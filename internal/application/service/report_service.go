package service

import (
	"context"
	"time"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/gastrosys/pos-api/internal/domain/report"
	"github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/gastrosys/pos-api/pkg/apperror"
)

// ReportService serves the read-only sales analytics built on persisted
// daily reports, bills and order items.
type ReportService struct {
	reportRepo    repository.DailyReportRepository
	billRepo      repository.BillRepository
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repository.DailyReportRepository,
	billRepo repository.BillRepository,
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
) *ReportService {
	return &ReportService{
		reportRepo:    reportRepo,
		billRepo:      billRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

// dayWindow expands a calendar date to its [00:00, 24:00) bounds.
func dayWindow(date time.Time) (time.Time, time.Time) {
	start := date.Truncate(24 * time.Hour)
	return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// PaymentMethodsByDate buckets a calendar day's bills by payment method
func (s *ReportService) PaymentMethodsByDate(ctx context.Context, date time.Time) (*report.PaymentMethodReport, error) {
	start, end := dayWindow(date)
	bills, err := s.billRepo.ListByIssueRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return &report.PaymentMethodReport{
		ReportDate: start,
		Breakdown:  report.PaymentBreakdown(bills),
	}, nil
}

// PaymentMethodsByRange buckets a date range's bills by payment method
func (s *ReportService) PaymentMethodsByRange(ctx context.Context, start, end time.Time) ([]report.PaymentBucket, error) {
	bills, err := s.billRepo.ListByIssueRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return report.PaymentBreakdown(bills), nil
}

// CategoryBreakdownByDate resolves the date's latest daily report and
// groups the report window's order lines by article category. A closed
// shift bounds the window at its end time; an open shift leaves it
// open-ended so orders still in flight are included. An empty breakdown
// is returned when the date has no report.
func (s *ReportService) CategoryBreakdownByDate(ctx context.Context, date time.Time) ([]report.CategoryBucket, error) {
	snapshot, err := s.reportRepo.GetLatestByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return []report.CategoryBucket{}, nil
	}

	orders, err := s.orderRepo.ListByStatusInWindow(ctx,
		[]enum.OrderStatus{enum.OrderStatusClosed, enum.OrderStatusSubmitted},
		snapshot.ShiftStartTime, snapshot.ShiftEndTime)
	if err != nil {
		return nil, err
	}
	return report.CategoryBreakdown(orders), nil
}

// SalesReport sums the persisted daily reports over [start, end]. A range
// with no reports is a not-found condition.
func (s *ReportService) SalesReport(ctx context.Context, start, end time.Time) (*report.SalesRangeReport, error) {
	reports, err := s.reportRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	totals, ok := report.SalesRange(reports)
	if !ok {
		return nil, apperror.NewNotFoundError("Sales report")
	}
	totals.StartDate = start
	totals.EndDate = end
	return &totals, nil
}

// SalesExportData collects everything the spreadsheet export needs: the
// per-shift daily reports of the range, their summed totals and the
// most-sold ranking.
func (s *ReportService) SalesExportData(ctx context.Context, start, end time.Time) ([]entity.DailyReport, *report.SalesRangeReport, []report.ArticleSales, error) {
	reports, err := s.reportRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, nil, nil, err
	}
	totals, ok := report.SalesRange(reports)
	if !ok {
		return nil, nil, nil, apperror.NewNotFoundError("Sales report")
	}
	totals.StartDate = start
	totals.EndDate = end

	mostSold, err := s.MostSoldArticles(ctx, start, end)
	if err != nil {
		return nil, nil, nil, err
	}
	return reports, &totals, mostSold, nil
}

// MostSoldArticles ranks articles by quantity sold over the bills issued
// in [start, end+1day), top ten.
func (s *ReportService) MostSoldArticles(ctx context.Context, start, end time.Time) ([]report.ArticleSales, error) {
	items, err := s.orderItemRepo.ListBilledInRange(ctx, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return report.MostSold(items, report.MostSoldLimit), nil
}

// CustomerTypesByDate groups a calendar day's billed revenue by customer
// type
func (s *ReportService) CustomerTypesByDate(ctx context.Context, date time.Time) (*report.CustomerTypeReport, error) {
	start, end := dayWindow(date)
	bills, err := s.billRepo.ListByIssueRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return &report.CustomerTypeReport{
		ReportDate: &start,
		Breakdown:  report.CustomerTypeBreakdown(bills),
	}, nil
}

// CustomerTypesByRange groups a date range's billed revenue by customer
// type
func (s *ReportService) CustomerTypesByRange(ctx context.Context, start, end time.Time) (*report.CustomerTypeReport, error) {
	bills, err := s.billRepo.ListByIssueRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return &report.CustomerTypeReport{
		StartDate: &start,
		EndDate:   &end,
		Breakdown: report.CustomerTypeBreakdown(bills),
	}, nil
}
