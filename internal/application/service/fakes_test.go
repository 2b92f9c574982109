package service

import (
	"context"
	"time"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/gastrosys/pos-api/internal/domain/report"
	"github.com/gastrosys/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// In-memory repository fakes backing the service tests. They keep just
// enough behavior to honor the repository contracts: not-found reads
// return (nil, nil) and writes mutate shared state so transactional flows
// can be asserted end to end.

type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeShiftRepo struct {
	shifts    map[uuid.UUID]*entity.Shift
	createErr error
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[uuid.UUID]*entity.Shift)}
}

func (r *fakeShiftRepo) Create(_ context.Context, shift *entity.Shift) error {
	if r.createErr != nil {
		return r.createErr
	}
	if shift.ID == uuid.Nil {
		shift.ID = uuid.New()
	}
	r.shifts[shift.ID] = shift
	return nil
}

func (r *fakeShiftRepo) GetActiveByEmployee(_ context.Context, employeeID uuid.UUID) (*entity.Shift, error) {
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID && s.EndTime == nil {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeShiftRepo) Update(_ context.Context, shift *entity.Shift) error {
	r.shifts[shift.ID] = shift
	return nil
}

func (r *fakeShiftRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID) ([]entity.Shift, error) {
	var out []entity.Shift
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeDailyReportRepo struct {
	reports []*entity.DailyReport
}

func (r *fakeDailyReportRepo) Create(_ context.Context, rep *entity.DailyReport) error {
	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	r.reports = append(r.reports, rep)
	return nil
}

func (r *fakeDailyReportRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.DailyReport, error) {
	for _, rep := range r.reports {
		if rep.ID == id {
			return rep, nil
		}
	}
	return nil, nil
}

func (r *fakeDailyReportRepo) GetLatestByDate(_ context.Context, date time.Time) (*entity.DailyReport, error) {
	day := date.Truncate(24 * time.Hour)
	var latest *entity.DailyReport
	for _, rep := range r.reports {
		if !rep.ReportDate.Equal(day) {
			continue
		}
		if latest == nil || rep.ShiftStartTime.After(latest.ShiftStartTime) {
			latest = rep
		}
	}
	return latest, nil
}

func (r *fakeDailyReportRepo) ListByDateRange(_ context.Context, start, end time.Time) ([]entity.DailyReport, error) {
	var out []entity.DailyReport
	for _, rep := range r.reports {
		if !rep.ReportDate.Before(start) && !rep.ReportDate.After(end) {
			out = append(out, *rep)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *fakeOrderRepo) add(order *entity.Order) *entity.Order {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders[order.ID] = order
	return order
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.add(order)
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetActiveByTable(_ context.Context, tableID uuid.UUID) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.TableID == tableID && o.Status.IsActive() {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) GetLatestBilledByTable(_ context.Context, tableID uuid.UUID) (*entity.Order, error) {
	var latest *entity.Order
	for _, o := range r.orders {
		if o.TableID != tableID || o.Status != enum.OrderStatusBilled {
			continue
		}
		if latest == nil || o.OrderDate.After(latest.OrderDate) {
			latest = o
		}
	}
	return latest, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (r *fakeOrderRepo) ListClosedByEmployeeInWindow(_ context.Context, employeeID uuid.UUID, start, end time.Time) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.EmployeeID != employeeID || o.Status != enum.OrderStatusClosed {
			continue
		}
		if o.OrderDate.Before(start) || o.OrderDate.After(end) {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByStatusInWindow(_ context.Context, statuses []enum.OrderStatus, start time.Time, end *time.Time) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.OrderDate.Before(start) {
			continue
		}
		if end != nil && o.OrderDate.After(*end) {
			continue
		}
		for _, st := range statuses {
			if o.Status == st {
				out = append(out, *o)
				break
			}
		}
	}
	return out, nil
}

type fakeOrderItemRepo struct {
	items map[uuid.UUID]*entity.OrderItem
	// ordersByID backs ListBilledInRange; tests that exercise the billed
	// window share the order repo's map here.
	ordersByID map[uuid.UUID]*entity.Order
}

func newFakeOrderItemRepo() *fakeOrderItemRepo {
	return &fakeOrderItemRepo{items: make(map[uuid.UUID]*entity.OrderItem)}
}

func (r *fakeOrderItemRepo) Create(_ context.Context, item *entity.OrderItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeOrderItemRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.OrderItem, error) {
	return r.items[id], nil
}

func (r *fakeOrderItemRepo) ListByOrder(_ context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	var out []entity.OrderItem
	for _, it := range r.items {
		if it.OrderID == orderID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *fakeOrderItemRepo) CountByOrder(_ context.Context, orderID uuid.UUID) (int64, error) {
	var n int64
	for _, it := range r.items {
		if it.OrderID == orderID {
			n++
		}
	}
	return n, nil
}

func (r *fakeOrderItemRepo) Update(_ context.Context, item *entity.OrderItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeOrderItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

// ListBilledInRange mirrors the gorm join: items whose order carries a
// bill issued in [start, end).
func (r *fakeOrderItemRepo) ListBilledInRange(_ context.Context, start, end time.Time) ([]entity.OrderItem, error) {
	var out []entity.OrderItem
	for _, it := range r.items {
		o := r.ordersByID[it.OrderID]
		if o == nil || o.Bill == nil {
			continue
		}
		if o.Bill.IssueDate.Before(start) || !o.Bill.IssueDate.Before(end) {
			continue
		}
		out = append(out, *it)
	}
	return out, nil
}

type fakeTableRepo struct {
	tables map[uuid.UUID]*entity.RestaurantTable
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{tables: make(map[uuid.UUID]*entity.RestaurantTable)}
}

func (r *fakeTableRepo) add(table *entity.RestaurantTable) *entity.RestaurantTable {
	if table.ID == uuid.Nil {
		table.ID = uuid.New()
	}
	r.tables[table.ID] = table
	return table
}

func (r *fakeTableRepo) Create(_ context.Context, table *entity.RestaurantTable) error {
	r.add(table)
	return nil
}

func (r *fakeTableRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.RestaurantTable, error) {
	return r.tables[id], nil
}

func (r *fakeTableRepo) List(_ context.Context) ([]entity.RestaurantTable, error) {
	var out []entity.RestaurantTable
	for _, t := range r.tables {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTableRepo) Update(_ context.Context, table *entity.RestaurantTable) error {
	r.tables[table.ID] = table
	return nil
}

func (r *fakeTableRepo) AnyOccupiedByEmployee(_ context.Context, employeeID uuid.UUID) (bool, error) {
	for _, t := range r.tables {
		if t.Occupied && t.EmployeeID != nil && *t.EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeBillRepo struct {
	bills     map[uuid.UUID]*entity.Bill
	createErr error
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]*entity.Bill)}
}

func (r *fakeBillRepo) Create(_ context.Context, bill *entity.Bill) error {
	if r.createErr != nil {
		return r.createErr
	}
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Bill, error) {
	return r.bills[id], nil
}

func (r *fakeBillRepo) GetByOrderID(_ context.Context, orderID uuid.UUID) (*entity.Bill, error) {
	for _, b := range r.bills {
		if b.OrderID == orderID {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBillRepo) List(_ context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error) {
	var out []entity.Bill
	for _, b := range r.bills {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBillRepo) ListByIssueRange(_ context.Context, start, end time.Time) ([]entity.Bill, error) {
	var out []entity.Bill
	for _, b := range r.bills {
		if !b.IssueDate.Before(start) && !b.IssueDate.After(end) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBillRepo) Update(_ context.Context, bill *entity.Bill) error {
	r.bills[bill.ID] = bill
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) add(c *entity.Customer) *entity.Customer {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	return c
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.add(c)
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) List(_ context.Context, params *pagination.PaginationParams) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

type fakeArticleRepo struct {
	articles map[uuid.UUID]*entity.Article
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[uuid.UUID]*entity.Article)}
}

func (r *fakeArticleRepo) add(a *entity.Article) *entity.Article {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.articles[a.ID] = a
	return a
}

func (r *fakeArticleRepo) Create(_ context.Context, a *entity.Article) error {
	r.add(a)
	return nil
}

func (r *fakeArticleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Article, error) {
	return r.articles[id], nil
}

func (r *fakeArticleRepo) GetByName(_ context.Context, name string) (*entity.Article, error) {
	for _, a := range r.articles {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeArticleRepo) List(_ context.Context, activeOnly bool) ([]entity.Article, error) {
	var out []entity.Article
	for _, a := range r.articles {
		if activeOnly && !a.Active {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeArticleRepo) ListByCategory(_ context.Context, category string) ([]entity.Article, error) {
	var out []entity.Article
	for _, a := range r.articles {
		if a.Active && a.Category == category {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeArticleRepo) Update(_ context.Context, a *entity.Article) error {
	r.articles[a.ID] = a
	return nil
}

type fakeMailer struct {
	sent []string
}

func (m *fakeMailer) SendShiftReportEmail(toEmail string, _ *report.EnhancedShiftReport) error {
	m.sent = append(m.sent, toEmail)
	return nil
}
