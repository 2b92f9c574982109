package service

import (
	"context"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/gastrosys/pos-api/pkg/apperror"
	"github.com/gastrosys/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerService handles customer operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput represents the create/update customer input
type CustomerInput struct {
	Name         string
	CustomerType string
	Contact      *string
	VatNumber    *string
	Address      *string
}

// CreateCustomer creates a new customer. An empty or unknown type label
// falls back to Final Customer.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "name is required"},
		})
	}

	customerType, _ := enum.ParseCustomerType(input.CustomerType)
	customer := &entity.Customer{
		Name:         input.Name,
		CustomerType: customerType,
		Contact:      input.Contact,
		VatNumber:    input.VatNumber,
		Address:      input.Address,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer returns one customer by id
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers returns a paginated customer list
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(customers, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateCustomer updates a customer's details
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		customer.Name = input.Name
	}
	if input.CustomerType != "" {
		customerType, _ := enum.ParseCustomerType(input.CustomerType)
		customer.CustomerType = customerType
	}
	if input.Contact != nil {
		customer.Contact = input.Contact
	}
	if input.VatNumber != nil {
		customer.VatNumber = input.VatNumber
	}
	if input.Address != nil {
		customer.Address = input.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer. Bills keep their customer reference
// through the soft delete.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}
