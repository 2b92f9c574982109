package service

import (
	"context"
	"time"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/gastrosys/pos-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService handles the order lifecycle from opening through closing
type OrderService struct {
	transactor    repository.Transactor
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	tableRepo     repository.TableRepository
	articleRepo   repository.ArticleRepository
	customerRepo  repository.CustomerRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	transactor repository.Transactor,
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	tableRepo repository.TableRepository,
	articleRepo repository.ArticleRepository,
	customerRepo repository.CustomerRepository,
) *OrderService {
	return &OrderService{
		transactor:    transactor,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		tableRepo:     tableRepo,
		articleRepo:   articleRepo,
		customerRepo:  customerRepo,
	}
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	TableID    uuid.UUID
	EmployeeID uuid.UUID
	CustomerID *uuid.UUID
	PaxAmount  int
}

// CreateOrder opens a pending order on an occupied table. If the table
// already has an active order that order is returned unchanged, so a
// retried create never forks a second order.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	table, err := s.tableRepo.GetByID(ctx, input.TableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}
	if !table.Occupied {
		return nil, apperror.NewInvalidStateError(apperror.CodeInvalidState, "table is not open")
	}

	existing, err := s.orderRepo.GetActiveByTable(ctx, input.TableID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	pax := input.PaxAmount
	if pax < 1 {
		if table.Pax != nil {
			pax = *table.Pax
		} else {
			pax = 1
		}
	}

	order := &entity.Order{
		TableID:    input.TableID,
		EmployeeID: input.EmployeeID,
		CustomerID: input.CustomerID,
		PaxAmount:  pax,
		OrderDate:  time.Now(),
		Status:     enum.OrderStatusPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder returns an order with its items loaded. Orders that already
// have a bill are not served through this path; the bill endpoints own
// them from there.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusBilled {
		return nil, apperror.NewInvalidStateError(apperror.CodeInvalidState, "order is already billed")
	}
	return order, nil
}

// ActiveOrderForTable returns the table's active order with items, or a
// not-found error when the table has none.
func (s *OrderService) ActiveOrderForTable(ctx context.Context, tableID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetActiveByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Active order")
	}
	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// SubmitOrder moves a pending order to the kitchen. At least one item is
// required.
func (s *OrderService) SubmitOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status != enum.OrderStatusPending {
		return nil, apperror.NewInvalidStateError(apperror.CodeInvalidState, "only pending orders can be submitted")
	}

	count, err := s.orderItemRepo.CountByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperror.NewInvalidStateError(apperror.CodeInvalidState, "cannot submit an order without items")
	}

	order.Status = enum.OrderStatusSubmitted
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// AssignCustomer links a customer to an active order
func (s *OrderService) AssignCustomer(ctx context.Context, orderID, customerID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if !order.Status.IsActive() {
		return nil, apperror.NewInvalidStateError(apperror.CodeInvalidState, "order is no longer active")
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	order.CustomerID = &customerID
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// SetGlobalDiscount sets an order-wide discount percentage (0-100)
func (s *OrderService) SetGlobalDiscount(ctx context.Context, orderID uuid.UUID, percent decimal.Decimal) (*entity.Order, error) {
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "discount", Message: "discount must be between 0 and 100"},
		})
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if !order.Status.IsActive() {
		return nil, apperror.NewInvalidStateError(apperror.CodeInvalidState, "order is no longer active")
	}

	order.GlobalDiscount = &percent
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// CloseTable settles a billed order: the order moves to Closed and the
// table is released, both inside one transaction.
func (s *OrderService) CloseTable(ctx context.Context, tableID uuid.UUID) (*entity.RestaurantTable, error) {
	var table *entity.RestaurantTable

	err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		table, err = s.tableRepo.GetByID(txCtx, tableID)
		if err != nil {
			return err
		}
		if table == nil {
			return apperror.NewNotFoundError("Table")
		}
		if !table.Occupied {
			return apperror.NewInvalidStateError(apperror.CodeInvalidState, "table is not open")
		}

		order, err := s.orderRepo.GetActiveByTable(txCtx, tableID)
		if err != nil {
			return err
		}
		if order != nil {
			return apperror.NewInvalidStateError(apperror.CodeInvalidState, "table has an unbilled order")
		}

		billed, err := s.orderRepo.GetLatestBilledByTable(txCtx, tableID)
		if err != nil {
			return err
		}
		if billed != nil {
			if err := s.orderRepo.UpdateStatus(txCtx, billed.ID, enum.OrderStatusClosed); err != nil {
				return err
			}
		}

		table.Release()
		return s.tableRepo.Update(txCtx, table)
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// AddItemInput represents the add order item input
type AddItemInput struct {
	ArticleID uuid.UUID
	Quantity  int
	Comment   *string
	Discount  *decimal.Decimal
}

// AddItem appends a line item to the table's active order, creating a
// pending order first when the table has none. The article's current
// price is captured on the item.
func (s *OrderService) AddItem(ctx context.Context, tableID, employeeID uuid.UUID, input *AddItemInput) (*entity.OrderItem, error) {
	if input.Quantity < 1 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "quantity", Message: "quantity must be at least 1"},
		})
	}
	if input.Discount != nil && (input.Discount.IsNegative() || input.Discount.GreaterThan(decimal.NewFromInt(100))) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "discount", Message: "discount must be between 0 and 100"},
		})
	}

	article, err := s.articleRepo.GetByID(ctx, input.ArticleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperror.NewNotFoundError("Article")
	}
	if !article.Active {
		return nil, apperror.NewInvalidStateError(apperror.CodeInvalidState, "article is disabled")
	}

	order, err := s.orderRepo.GetActiveByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		order, err = s.CreateOrder(ctx, &CreateOrderInput{TableID: tableID, EmployeeID: employeeID})
		if err != nil {
			return nil, err
		}
	}

	item := &entity.OrderItem{
		OrderID:   order.ID,
		ArticleID: article.ID,
		TableID:   tableID,
		Quantity:  input.Quantity,
		Price:     article.Price,
		Comment:   input.Comment,
		Discount:  input.Discount,
	}
	if err := s.orderItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	item.Article = article
	return item, nil
}

// ListItems returns an order's line items
func (s *OrderService) ListItems(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return s.orderItemRepo.ListByOrder(ctx, orderID)
}

// UpdateItemQuantity changes a line item's quantity. Once the order has
// been submitted the kitchen owns it and edits are rejected.
func (s *OrderService) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*entity.OrderItem, error) {
	if quantity < 1 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "quantity", Message: "quantity must be at least 1"},
		})
	}

	item, err := s.orderItemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Order item")
	}

	order, err := s.orderRepo.GetByID(ctx, item.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status != enum.OrderStatusPending {
		return nil, apperror.NewInvalidStateError(apperror.CodeInvalidState, "submitted orders cannot be edited")
	}

	item.Quantity = quantity
	if err := s.orderItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes a line item. After submission only elevated roles
// may remove items. Deleting the last item closes the order and releases
// its table.
func (s *OrderService) DeleteItem(ctx context.Context, itemID uuid.UUID, role enum.EmployeeRole) error {
	item, err := s.orderItemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Order item")
	}

	order, err := s.orderRepo.GetByID(ctx, item.OrderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	if !order.Status.IsActive() {
		return apperror.NewInvalidStateError(apperror.CodeInvalidState, "order is no longer active")
	}
	if order.Status == enum.OrderStatusSubmitted && !role.Elevated() {
		return apperror.ErrForbidden
	}

	return s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.orderItemRepo.Delete(txCtx, itemID); err != nil {
			return err
		}

		count, err := s.orderItemRepo.CountByOrder(txCtx, order.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		// Last item gone: the order is void, free the table.
		if err := s.orderRepo.UpdateStatus(txCtx, order.ID, enum.OrderStatusClosed); err != nil {
			return err
		}
		table, err := s.tableRepo.GetByID(txCtx, order.TableID)
		if err != nil {
			return err
		}
		if table != nil && table.Occupied {
			table.Release()
			return s.tableRepo.Update(txCtx, table)
		}
		return nil
	})
}
