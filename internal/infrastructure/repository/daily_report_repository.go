package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	domainRepo "github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type dailyReportRepository struct {
	db *gorm.DB
}

// NewDailyReportRepository creates a new daily report repository
func NewDailyReportRepository(db *gorm.DB) domainRepo.DailyReportRepository {
	return &dailyReportRepository{db: db}
}

func (r *dailyReportRepository) Create(ctx context.Context, report *entity.DailyReport) error {
	return dbFrom(ctx, r.db).Create(report).Error
}

func (r *dailyReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyReport, error) {
	var report entity.DailyReport
	err := dbFrom(ctx, r.db).First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetLatestByDate picks one report deterministically when a date has
// several shifts: newest shift start wins, id breaks ties.
func (r *dailyReportRepository) GetLatestByDate(ctx context.Context, date time.Time) (*entity.DailyReport, error) {
	day := date.Truncate(24 * time.Hour)
	var report entity.DailyReport
	err := dbFrom(ctx, r.db).
		Where("report_date >= ? AND report_date < ?", day, day.AddDate(0, 0, 1)).
		Order("shift_start_time DESC, id DESC").
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *dailyReportRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.DailyReport, error) {
	var reports []entity.DailyReport
	err := dbFrom(ctx, r.db).
		Where("report_date >= ? AND report_date <= ?", start, end).
		Order("report_date ASC, shift_start_time ASC").
		Find(&reports).Error
	return reports, err
}
