package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/gastrosys/pos-api/internal/domain/report"
	"github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/gastrosys/pos-api/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftReportMailer delivers a finished shift report, typically by email.
type ShiftReportMailer interface {
	SendShiftReportEmail(toEmail string, rpt *report.EnhancedShiftReport) error
}

// ShiftService owns the shift lifecycle and the report snapshots taken at
// shift close. It is the only writer of shifts and daily reports.
type ShiftService struct {
	transactor repository.Transactor
	shiftRepo  repository.ShiftRepository
	reportRepo repository.DailyReportRepository
	orderRepo  repository.OrderRepository
	billRepo   repository.BillRepository
	tableRepo  repository.TableRepository

	mailer   ShiftReportMailer
	reportTo string
}

// NewShiftService creates a new shift service. mailer may be nil when
// report mail is not configured.
func NewShiftService(
	transactor repository.Transactor,
	shiftRepo repository.ShiftRepository,
	reportRepo repository.DailyReportRepository,
	orderRepo repository.OrderRepository,
	billRepo repository.BillRepository,
	tableRepo repository.TableRepository,
	mailer ShiftReportMailer,
	reportTo string,
) *ShiftService {
	return &ShiftService{
		transactor: transactor,
		shiftRepo:  shiftRepo,
		reportRepo: reportRepo,
		orderRepo:  orderRepo,
		billRepo:   billRepo,
		tableRepo:  tableRepo,
		mailer:     mailer,
		reportTo:   reportTo,
	}
}

// StartShift opens a shift for the employee. A second start while one is
// open fails with SHIFT_ALREADY_ACTIVE; the partial unique index on open
// shifts backs the check under concurrency.
func (s *ShiftService) StartShift(ctx context.Context, employeeID uuid.UUID) (*entity.Shift, error) {
	active, err := s.shiftRepo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, apperror.NewInvalidStateError(apperror.CodeAlreadyActive, "employee already has an active shift")
	}

	shift := &entity.Shift{
		EmployeeID: employeeID,
		StartTime:  time.Now(),
	}
	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewInvalidStateError(apperror.CodeAlreadyActive, "employee already has an active shift")
		}
		return nil, err
	}
	return shift, nil
}

// EndShift closes the employee's active shift: the end time is stamped,
// the shift window's closed orders are totalled and a daily report
// snapshot is persisted, all in one transaction. The enriched report is
// assembled after commit and mailed best-effort when configured.
func (s *ShiftService) EndShift(ctx context.Context, employeeID uuid.UUID) (*report.EnhancedShiftReport, error) {
	var snapshot *entity.DailyReport

	err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		shift, err := s.shiftRepo.GetActiveByEmployee(txCtx, employeeID)
		if err != nil {
			return err
		}
		if shift == nil {
			return apperror.NewInvalidStateError(apperror.CodeNoActiveShift, "employee has no active shift")
		}

		occupied, err := s.tableRepo.AnyOccupiedByEmployee(txCtx, employeeID)
		if err != nil {
			return err
		}
		if occupied {
			return apperror.NewInvalidStateError(apperror.CodeOpenTablesExist, "close or hand over all open tables before ending the shift")
		}

		now := time.Now()
		shift.EndTime = &now
		if err := s.shiftRepo.Update(txCtx, shift); err != nil {
			return err
		}

		orders, err := s.orderRepo.ListClosedByEmployeeInWindow(txCtx, employeeID, shift.StartTime, now)
		if err != nil {
			return err
		}

		income, discount, orderCount, pax := report.ShiftTotals(orders)
		snapshot = &entity.DailyReport{
			ReportDate:           shift.StartTime.Truncate(24 * time.Hour),
			TotalIncome:          income,
			TotalDiscount:        discount,
			TotalOrders:          orderCount,
			TotalPax:             pax,
			ShiftStatus:          entity.ShiftStatusClosed,
			ShiftStartTime:       shift.StartTime,
			ShiftEndTime:         &now,
			ShiftStartEmployeeID: shift.EmployeeID,
			ShiftEndEmployeeID:   &employeeID,
		}
		return s.reportRepo.Create(txCtx, snapshot)
	})
	if err != nil {
		return nil, err
	}

	enriched, err := s.enrichReport(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	if s.mailer != nil && s.reportTo != "" {
		if err := s.mailer.SendShiftReportEmail(s.reportTo, enriched); err != nil {
			log.Printf("Warning: failed to send shift report email: %v", err)
		}
	}
	return enriched, nil
}

// GetActiveShift returns the employee's open shift, or a not-found error
func (s *ShiftService) GetActiveShift(ctx context.Context, employeeID uuid.UUID) (*entity.Shift, error) {
	shift, err := s.shiftRepo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewNotFoundError("Active shift")
	}
	return shift, nil
}

// CurrentShiftReport builds a live report for the employee's open shift:
// totals over the closed orders so far, with an open-ended window. No
// snapshot is persisted.
func (s *ShiftService) CurrentShiftReport(ctx context.Context, employeeID uuid.UUID) (*report.EnhancedShiftReport, error) {
	shift, err := s.shiftRepo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewInvalidStateError(apperror.CodeNoActiveShift, "employee has no active shift")
	}

	orders, err := s.orderRepo.ListClosedByEmployeeInWindow(ctx, employeeID, shift.StartTime, time.Now())
	if err != nil {
		return nil, err
	}
	income, discount, orderCount, pax := report.ShiftTotals(orders)

	live := &entity.DailyReport{
		ReportDate:           shift.StartTime.Truncate(24 * time.Hour),
		TotalIncome:          income,
		TotalDiscount:        discount,
		TotalOrders:          orderCount,
		TotalPax:             pax,
		ShiftStatus:          entity.ShiftStatusOpen,
		ShiftStartTime:       shift.StartTime,
		ShiftStartEmployeeID: shift.EmployeeID,
	}
	return s.enrichReport(ctx, live)
}

// ShiftHistory returns the employee's past shifts, newest first
func (s *ShiftService) ShiftHistory(ctx context.Context, employeeID uuid.UUID) ([]entity.Shift, error) {
	return s.shiftRepo.ListByEmployee(ctx, employeeID)
}

// ReportByID returns the enriched report for a persisted snapshot
func (s *ShiftService) ReportByID(ctx context.Context, id uuid.UUID) (*report.EnhancedShiftReport, error) {
	snapshot, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, apperror.NewNotFoundError("Report")
	}
	return s.enrichReport(ctx, snapshot)
}

// ReportByDate returns the enriched report for a calendar date, resolving
// the latest shift's snapshot when the date saw several
func (s *ShiftService) ReportByDate(ctx context.Context, date time.Time) (*report.EnhancedShiftReport, error) {
	snapshot, err := s.reportRepo.GetLatestByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, apperror.NewNotFoundError("Report")
	}
	return s.enrichReport(ctx, snapshot)
}

// enrichReport attaches the category and payment breakdowns to a report
// snapshot. The window runs from shift start to shift end, open-ended for
// a still-open shift. Payment breakdowns need settled bills, so they stay
// empty until the shift has ended.
func (s *ShiftService) enrichReport(ctx context.Context, snapshot *entity.DailyReport) (*report.EnhancedShiftReport, error) {
	orders, err := s.orderRepo.ListByStatusInWindow(ctx,
		[]enum.OrderStatus{enum.OrderStatusClosed, enum.OrderStatusSubmitted},
		snapshot.ShiftStartTime, snapshot.ShiftEndTime)
	if err != nil {
		return nil, err
	}
	categories := report.CategoryBreakdown(orders)

	payments := []report.PaymentBucket{}
	if snapshot.ShiftEndTime != nil {
		bills, err := s.billRepo.ListByIssueRange(ctx, snapshot.ShiftStartTime, *snapshot.ShiftEndTime)
		if err != nil {
			return nil, err
		}
		payments = report.PaymentBreakdown(bills)
	}

	enriched := &report.EnhancedShiftReport{
		ReportDate:        snapshot.ReportDate,
		TotalIncome:       snapshot.TotalIncome,
		TotalOrders:       snapshot.TotalOrders,
		TotalPax:          snapshot.TotalPax,
		TotalDiscount:     snapshot.TotalDiscount,
		ShiftStartTime:    snapshot.ShiftStartTime,
		ShiftEndTime:      snapshot.ShiftEndTime,
		CategoryBreakdown: categories,
		PaymentBreakdown:  payments,
	}
	if snapshot.ID != uuid.Nil {
		enriched.ReportID = snapshot.ID.String()
	}
	return enriched, nil
}
