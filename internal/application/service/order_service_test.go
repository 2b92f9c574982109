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
)

type orderFixture struct {
	svc         *OrderService
	orderRepo   *fakeOrderRepo
	itemRepo    *fakeOrderItemRepo
	tableRepo   *fakeTableRepo
	articleRepo *fakeArticleRepo
}

func newOrderFixture() *orderFixture {
	orderRepo := newFakeOrderRepo()
	itemRepo := newFakeOrderItemRepo()
	tableRepo := newFakeTableRepo()
	articleRepo := newFakeArticleRepo()
	customerRepo := newFakeCustomerRepo()
	return &orderFixture{
		svc:         NewOrderService(fakeTransactor{}, orderRepo, itemRepo, tableRepo, articleRepo, customerRepo),
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		tableRepo:   tableRepo,
		articleRepo: articleRepo,
	}
}

func (f *orderFixture) openTable(employeeID uuid.UUID) *entity.RestaurantTable {
	table := &entity.RestaurantTable{Number: 1, Capacity: 4}
	table.Open(employeeID, 2)
	return f.tableRepo.add(table)
}

func TestCreateOrder_RequiresOpenTable(t *testing.T) {
	f := newOrderFixture()
	table := f.tableRepo.add(&entity.RestaurantTable{Number: 1, Capacity: 4})

	_, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TableID:    table.ID,
		EmployeeID: uuid.New(),
	})
	assertErrorCode(t, err, apperror.CodeInvalidState)
}

func TestCreateOrder_ReturnsExistingActiveOrder(t *testing.T) {
	f := newOrderFixture()
	employeeID := uuid.New()
	table := f.openTable(employeeID)

	first, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TableID:    table.ID,
		EmployeeID: employeeID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	second, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TableID:    table.ID,
		EmployeeID: employeeID,
	})
	if err != nil {
		t.Fatalf("retried create failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatal("retried create must return the existing active order")
	}
}

func TestCreateOrder_PaxDefaultsFromTable(t *testing.T) {
	f := newOrderFixture()
	employeeID := uuid.New()
	table := f.openTable(employeeID)

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TableID:    table.ID,
		EmployeeID: employeeID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if order.PaxAmount != 2 {
		t.Fatalf("expected pax 2 from the table, got %d", order.PaxAmount)
	}
}

func TestSubmitOrder_RequiresItems(t *testing.T) {
	f := newOrderFixture()
	order := f.orderRepo.add(&entity.Order{Status: enum.OrderStatusPending})

	_, err := f.svc.SubmitOrder(context.Background(), order.ID)
	assertErrorCode(t, err, apperror.CodeInvalidState)
}

func TestSubmitOrder_OnlyPending(t *testing.T) {
	f := newOrderFixture()
	order := f.orderRepo.add(&entity.Order{Status: enum.OrderStatusSubmitted})

	_, err := f.svc.SubmitOrder(context.Background(), order.ID)
	assertErrorCode(t, err, apperror.CodeInvalidState)
}

func TestAddItem_AutoCreatesOrderAndCapturesPrice(t *testing.T) {
	f := newOrderFixture()
	employeeID := uuid.New()
	table := f.openTable(employeeID)
	article := f.articleRepo.add(&entity.Article{
		Name: "Burger", Category: "Food", Price: decimal.RequireFromString("12.50"), Active: true,
	})

	item, err := f.svc.AddItem(context.Background(), table.ID, employeeID, &AddItemInput{
		ArticleID: article.ID,
		Quantity:  2,
	})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if !item.Price.Equal(article.Price) {
		t.Fatalf("item must capture the article's unit price, got %s", item.Price)
	}

	order, _ := f.orderRepo.GetActiveByTable(context.Background(), table.ID)
	if order == nil {
		t.Fatal("a pending order must exist after adding the first item")
	}
	if order.Status != enum.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if item.OrderID != order.ID {
		t.Fatal("item must belong to the auto-created order")
	}
}

func TestAddItem_DisabledArticleRejected(t *testing.T) {
	f := newOrderFixture()
	employeeID := uuid.New()
	table := f.openTable(employeeID)
	article := f.articleRepo.add(&entity.Article{Name: "Old dish", Category: "Food", Active: false})

	_, err := f.svc.AddItem(context.Background(), table.ID, employeeID, &AddItemInput{
		ArticleID: article.ID,
		Quantity:  1,
	})
	assertErrorCode(t, err, apperror.CodeInvalidState)
}

func TestUpdateItemQuantity_RejectedAfterSubmit(t *testing.T) {
	f := newOrderFixture()
	order := f.orderRepo.add(&entity.Order{Status: enum.OrderStatusSubmitted})
	item := &entity.OrderItem{OrderID: order.ID, Quantity: 1, Price: decimal.NewFromInt(5)}
	f.itemRepo.Create(context.Background(), item)

	_, err := f.svc.UpdateItemQuantity(context.Background(), item.ID, 3)
	assertErrorCode(t, err, apperror.CodeInvalidState)
}

func TestDeleteItem_SubmittedRequiresElevatedRole(t *testing.T) {
	f := newOrderFixture()
	order := f.orderRepo.add(&entity.Order{Status: enum.OrderStatusSubmitted})
	item := &entity.OrderItem{OrderID: order.ID, Quantity: 1, Price: decimal.NewFromInt(5)}
	f.itemRepo.Create(context.Background(), item)

	err := f.svc.DeleteItem(context.Background(), item.ID, enum.RoleWaiter)
	if !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("expected forbidden for waiter, got %v", err)
	}

	if err := f.svc.DeleteItem(context.Background(), item.ID, enum.RoleManager); err != nil {
		t.Fatalf("manager delete failed: %v", err)
	}
}

func TestDeleteItem_LastItemClosesOrderAndReleasesTable(t *testing.T) {
	f := newOrderFixture()
	employeeID := uuid.New()
	table := f.openTable(employeeID)
	order := f.orderRepo.add(&entity.Order{
		TableID:    table.ID,
		EmployeeID: employeeID,
		Status:     enum.OrderStatusPending,
	})
	item := &entity.OrderItem{OrderID: order.ID, TableID: table.ID, Quantity: 1, Price: decimal.NewFromInt(5)}
	f.itemRepo.Create(context.Background(), item)

	if err := f.svc.DeleteItem(context.Background(), item.ID, enum.RoleWaiter); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if f.orderRepo.orders[order.ID].Status != enum.OrderStatusClosed {
		t.Fatal("order must close when its last item is removed")
	}
	if f.tableRepo.tables[table.ID].Occupied {
		t.Fatal("table must be released when the order voids")
	}
}

func TestCloseTable_UnbilledOrderBlocks(t *testing.T) {
	f := newOrderFixture()
	employeeID := uuid.New()
	table := f.openTable(employeeID)
	f.orderRepo.add(&entity.Order{TableID: table.ID, EmployeeID: employeeID, Status: enum.OrderStatusSubmitted})

	_, err := f.svc.CloseTable(context.Background(), table.ID)
	assertErrorCode(t, err, apperror.CodeInvalidState)

	if !f.tableRepo.tables[table.ID].Occupied {
		t.Fatal("table must stay occupied when close is blocked")
	}
}

func TestCloseTable_ClosesBilledOrderAndReleases(t *testing.T) {
	f := newOrderFixture()
	employeeID := uuid.New()
	table := f.openTable(employeeID)
	order := f.orderRepo.add(&entity.Order{
		TableID:    table.ID,
		EmployeeID: employeeID,
		Status:     enum.OrderStatusBilled,
		OrderDate:  time.Now(),
	})

	released, err := f.svc.CloseTable(context.Background(), table.ID)
	if err != nil {
		t.Fatalf("close failed: %v", err)
	}

	if f.orderRepo.orders[order.ID].Status != enum.OrderStatusClosed {
		t.Fatal("billed order must move to closed")
	}
	if released.Occupied || released.EmployeeID != nil || released.Pax != nil {
		t.Fatal("table must be fully released")
	}
}

func TestGetOrder_BilledRejected(t *testing.T) {
	f := newOrderFixture()
	order := f.orderRepo.add(&entity.Order{Status: enum.OrderStatusBilled})

	_, err := f.svc.GetOrder(context.Background(), order.ID)
	assertErrorCode(t, err, apperror.CodeInvalidState)
}

func TestSetGlobalDiscount_Range(t *testing.T) {
	f := newOrderFixture()
	order := f.orderRepo.add(&entity.Order{Status: enum.OrderStatusPending})

	if _, err := f.svc.SetGlobalDiscount(context.Background(), order.ID, decimal.NewFromInt(101)); err == nil {
		t.Fatal("discount above 100 must be rejected")
	}
	if _, err := f.svc.SetGlobalDiscount(context.Background(), order.ID, decimal.NewFromInt(-1)); err == nil {
		t.Fatal("negative discount must be rejected")
	}
	if _, err := f.svc.SetGlobalDiscount(context.Background(), order.ID, decimal.NewFromInt(15)); err != nil {
		t.Fatalf("valid discount failed: %v", err)
	}
}
