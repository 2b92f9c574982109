package service

import (
	"context"
	"errors"
	"time"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/gastrosys/pos-api/pkg/apperror"
	"github.com/gastrosys/pos-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillService handles billing and payment settlement
type BillService struct {
	transactor   repository.Transactor
	billRepo     repository.BillRepository
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
}

// NewBillService creates a new bill service
func NewBillService(
	transactor repository.Transactor,
	billRepo repository.BillRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
) *BillService {
	return &BillService{
		transactor:   transactor,
		billRepo:     billRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	OrderID         uuid.UUID
	PaymentMethod   string
	SplitCashAmount *decimal.Decimal
	SplitCardAmount *decimal.Decimal
}

// CreateBill issues the bill for a submitted order and moves the order to
// Billed, both inside one transaction. Subtotal and discount are computed
// from the order's items and global discount. A second bill for the same
// order is rejected before the unique index would.
func (s *BillService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	var bill *entity.Bill

	err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		order, err := s.orderRepo.GetWithItems(txCtx, input.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Order")
		}
		if order.Status != enum.OrderStatusSubmitted {
			return apperror.NewInvalidStateError(apperror.CodeInvalidState, "only submitted orders can be billed")
		}

		existing, err := s.billRepo.GetByOrderID(txCtx, input.OrderID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperror.NewConflictError("order already has a bill")
		}

		subtotal := order.Subtotal()
		discount := decimal.Zero
		if order.GlobalDiscount != nil && order.GlobalDiscount.IsPositive() {
			discount = subtotal.Mul(order.GlobalDiscount.Div(decimal.NewFromInt(100))).Round(2)
		}
		total := subtotal.Sub(discount)

		method := enum.ParsePaymentMethod(input.PaymentMethod)
		bill = &entity.Bill{
			OrderID:       order.ID,
			CustomerID:    order.CustomerID,
			Subtotal:      subtotal,
			Discount:      discount,
			Total:         total,
			PaymentMethod: method,
			IssueDate:     time.Now(),
		}

		if method == enum.PaymentMethodSplit {
			if (input.SplitCashAmount == nil) != (input.SplitCardAmount == nil) {
				return apperror.NewValidationError([]apperror.FieldError{
					{Field: "split_amounts", Message: "split payments need both a cash and a card amount"},
				})
			}
			if input.SplitCashAmount != nil {
				if input.SplitCashAmount.Add(*input.SplitCardAmount).Cmp(total) != 0 {
					return apperror.NewValidationError([]apperror.FieldError{
						{Field: "split_amounts", Message: "split amounts must sum to the bill total"},
					})
				}
				bill.SplitCashAmount = input.SplitCashAmount
				bill.SplitCardAmount = input.SplitCardAmount
			}
		} else if input.SplitCashAmount != nil || input.SplitCardAmount != nil {
			return apperror.NewValidationError([]apperror.FieldError{
				{Field: "split_amounts", Message: "split amounts are only valid for split payments"},
			})
		}

		if err := s.billRepo.Create(txCtx, bill); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.NewConflictError("order already has a bill")
			}
			return err
		}
		return s.orderRepo.UpdateStatus(txCtx, order.ID, enum.OrderStatusBilled)
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// GetBill returns one bill by id
func (s *BillService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// GetBillForOrder returns the bill issued for an order
func (s *BillService) GetBillForOrder(ctx context.Context, orderID uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills returns a paginated bill list, newest first
func (s *BillService) ListBills(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(bills, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// BillsByDate returns the bills issued on a calendar day
func (s *BillService) BillsByDate(ctx context.Context, date time.Time) ([]entity.Bill, error) {
	day := date.Truncate(24 * time.Hour)
	return s.billRepo.ListByIssueRange(ctx, day, day.AddDate(0, 0, 1).Add(-time.Nanosecond))
}

// RecordPaymentInput represents the record payment input
type RecordPaymentInput struct {
	PaymentMethod   string
	SplitCashAmount *decimal.Decimal
	SplitCardAmount *decimal.Decimal
}

// RecordPayment sets or corrects the payment method on an issued bill
func (s *BillService) RecordPayment(ctx context.Context, billID uuid.UUID, input *RecordPaymentInput) (*entity.Bill, error) {
	bill, err := s.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}

	method := enum.ParsePaymentMethod(input.PaymentMethod)
	bill.PaymentMethod = method
	bill.SplitCashAmount = nil
	bill.SplitCardAmount = nil

	if method == enum.PaymentMethodSplit {
		if (input.SplitCashAmount == nil) != (input.SplitCardAmount == nil) {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "split_amounts", Message: "split payments need both a cash and a card amount"},
			})
		}
		if input.SplitCashAmount != nil {
			if input.SplitCashAmount.Add(*input.SplitCardAmount).Cmp(bill.Total) != 0 {
				return nil, apperror.NewValidationError([]apperror.FieldError{
					{Field: "split_amounts", Message: "split amounts must sum to the bill total"},
				})
			}
			bill.SplitCashAmount = input.SplitCashAmount
			bill.SplitCardAmount = input.SplitCardAmount
		}
	}

	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// ProcessPaymentInput represents the process payment input
type ProcessPaymentInput struct {
	TotalPaid    decimal.Decimal
	CustomerType string
	CustomerID   *uuid.UUID
}

// ProcessPayment validates the amount tendered and the customer-type
// handling for a bill. Corporate payments require a corporate customer and
// link it to the bill; final-customer payments clear any link.
func (s *BillService) ProcessPayment(ctx context.Context, billID uuid.UUID, input *ProcessPaymentInput) (*entity.Bill, error) {
	bill, err := s.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}

	if input.TotalPaid.LessThan(bill.Total) {
		return nil, apperror.NewInvalidStateError(apperror.CodeInsufficientPay, "amount paid is less than the bill total")
	}

	customerType, recognized := enum.ParseCustomerType(input.CustomerType)
	if !recognized {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "customer_type", Message: "unknown customer type"},
		})
	}

	switch customerType {
	case enum.CustomerTypeCorporate:
		if input.CustomerID == nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "customer_id", Message: "corporate payments require a customer"},
			})
		}
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		if customer.CustomerType != enum.CustomerTypeCorporate {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "customer_id", Message: "customer is not a corporate account"},
			})
		}
		if customer.VatNumber == nil || *customer.VatNumber == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "customer_id", Message: "corporate customer is missing company information"},
			})
		}
		bill.CustomerID = input.CustomerID
	case enum.CustomerTypeFinal:
		bill.CustomerID = nil
	}

	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}
