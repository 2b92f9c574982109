package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gastrosys/pos-api/internal/application/service"
	"github.com/gastrosys/pos-api/internal/config"
	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/gastrosys/pos-api/internal/presentation/http/handler"
	"github.com/gastrosys/pos-api/pkg/pagination"
	"github.com/gastrosys/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Minimal stubs backing an end-to-end router test. Only the shift-close
// path is exercised; everything else returns zero values.

type stubTransactor struct{}

func (stubTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubShiftRepo struct {
	shift *entity.Shift
}

func (r *stubShiftRepo) Create(_ context.Context, s *entity.Shift) error { return nil }

func (r *stubShiftRepo) GetActiveByEmployee(_ context.Context, employeeID uuid.UUID) (*entity.Shift, error) {
	if r.shift != nil && r.shift.EmployeeID == employeeID && r.shift.EndTime == nil {
		return r.shift, nil
	}
	return nil, nil
}

func (r *stubShiftRepo) Update(_ context.Context, s *entity.Shift) error { r.shift = s; return nil }

func (r *stubShiftRepo) ListByEmployee(_ context.Context, _ uuid.UUID) ([]entity.Shift, error) {
	return nil, nil
}

type stubReportRepo struct{}

func (stubReportRepo) Create(_ context.Context, rep *entity.DailyReport) error {
	rep.ID = uuid.New()
	return nil
}

func (stubReportRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.DailyReport, error) {
	return nil, nil
}

func (stubReportRepo) GetLatestByDate(_ context.Context, _ time.Time) (*entity.DailyReport, error) {
	return nil, nil
}

func (stubReportRepo) ListByDateRange(_ context.Context, _, _ time.Time) ([]entity.DailyReport, error) {
	return nil, nil
}

type stubOrderRepo struct{}

func (stubOrderRepo) Create(_ context.Context, _ *entity.Order) error { return nil }
func (stubOrderRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.Order, error) {
	return nil, nil
}
func (stubOrderRepo) GetWithItems(_ context.Context, _ uuid.UUID) (*entity.Order, error) {
	return nil, nil
}
func (stubOrderRepo) GetActiveByTable(_ context.Context, _ uuid.UUID) (*entity.Order, error) {
	return nil, nil
}
func (stubOrderRepo) GetLatestBilledByTable(_ context.Context, _ uuid.UUID) (*entity.Order, error) {
	return nil, nil
}
func (stubOrderRepo) Update(_ context.Context, _ *entity.Order) error { return nil }
func (stubOrderRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ enum.OrderStatus) error {
	return nil
}
func (stubOrderRepo) ListClosedByEmployeeInWindow(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]entity.Order, error) {
	return nil, nil
}
func (stubOrderRepo) ListByStatusInWindow(_ context.Context, _ []enum.OrderStatus, _ time.Time, _ *time.Time) ([]entity.Order, error) {
	return nil, nil
}

type stubBillRepo struct{}

func (stubBillRepo) Create(_ context.Context, _ *entity.Bill) error { return nil }
func (stubBillRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.Bill, error) {
	return nil, nil
}
func (stubBillRepo) GetByOrderID(_ context.Context, _ uuid.UUID) (*entity.Bill, error) {
	return nil, nil
}
func (stubBillRepo) List(_ context.Context, _ *pagination.PaginationParams) ([]entity.Bill, int64, error) {
	return nil, 0, nil
}
func (stubBillRepo) ListByIssueRange(_ context.Context, _, _ time.Time) ([]entity.Bill, error) {
	return nil, nil
}
func (stubBillRepo) Update(_ context.Context, _ *entity.Bill) error { return nil }

type stubTableRepo struct{}

func (stubTableRepo) Create(_ context.Context, _ *entity.RestaurantTable) error { return nil }
func (stubTableRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.RestaurantTable, error) {
	return nil, nil
}
func (stubTableRepo) List(_ context.Context) ([]entity.RestaurantTable, error) { return nil, nil }
func (stubTableRepo) Update(_ context.Context, _ *entity.RestaurantTable) error {
	return nil
}
func (stubTableRepo) AnyOccupiedByEmployee(_ context.Context, _ uuid.UUID) (bool, error) {
	return false, nil
}

type stubIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func (r *stubIdempotencyRepo) GetByKey(_ context.Context, key string, employeeID uuid.UUID) (*entity.IdempotencyKey, error) {
	return r.keys[key+employeeID.String()], nil
}

func (r *stubIdempotencyRepo) Create(_ context.Context, k *entity.IdempotencyKey) error {
	r.keys[k.Key+k.EmployeeID.String()] = k
	return nil
}

func (r *stubIdempotencyRepo) DeleteExpired(_ context.Context) error { return nil }

// A retried shift close carrying the same Idempotency-Key must replay the
// first response instead of failing with NO_ACTIVE_SHIFT.
func TestShiftEndRoute_RetryReplaysResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	employeeID := uuid.New()
	start := time.Now().Add(-8 * time.Hour)
	shiftRepo := &stubShiftRepo{shift: &entity.Shift{ID: uuid.New(), EmployeeID: employeeID, StartTime: start}}

	shiftService := service.NewShiftService(
		stubTransactor{}, shiftRepo, stubReportRepo{}, stubOrderRepo{},
		stubBillRepo{}, stubTableRepo{}, nil, "")

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.GenerateToken(employeeID, "maria", enum.RoleManager)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	router := Setup(&Handlers{
		Auth:     &handler.AuthHandler{},
		Table:    &handler.TableHandler{},
		Order:    &handler.OrderHandler{},
		Bill:     &handler.BillHandler{},
		Article:  &handler.ArticleHandler{},
		Customer: &handler.CustomerHandler{},
		Shift:    handler.NewShiftHandler(shiftService),
		Report:   &handler.ReportHandler{},
	}, &Deps{
		JWTManager:      jwtManager,
		Cfg:             &config.Config{RateLimit: config.RateLimitConfig{Requests: 100, Duration: 1}},
		IdempotencyRepo: &stubIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)},
	})

	endShift := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shifts/end", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Idempotency-Key", "close-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := endShift()
	if first.Code != http.StatusOK {
		t.Fatalf("first close failed with %d: %s", first.Code, first.Body.String())
	}

	// The shift is now ended; only a replay can return the report again.
	second := endShift()
	if second.Code != http.StatusOK {
		t.Fatalf("retried close must replay the stored response, got %d: %s", second.Code, second.Body.String())
	}
	if second.Header().Get("X-Idempotency-Replayed") != "true" {
		t.Fatal("retried close must be served from the idempotency store")
	}
	if second.Body.String() != first.Body.String() {
		t.Fatal("replayed body must match the original response")
	}
}
