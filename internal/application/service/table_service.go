package service

import (
	"context"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/gastrosys/pos-api/pkg/apperror"
	"github.com/google/uuid"
)

// TableService handles dining room table operations
type TableService struct {
	tableRepo repository.TableRepository
	orderRepo repository.OrderRepository
}

// NewTableService creates a new table service
func NewTableService(tableRepo repository.TableRepository, orderRepo repository.OrderRepository) *TableService {
	return &TableService{
		tableRepo: tableRepo,
		orderRepo: orderRepo,
	}
}

// ListTables returns all tables ordered by number
func (s *TableService) ListTables(ctx context.Context) ([]entity.RestaurantTable, error) {
	return s.tableRepo.List(ctx)
}

// GetTable returns one table by id
func (s *TableService) GetTable(ctx context.Context, id uuid.UUID) (*entity.RestaurantTable, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}
	return table, nil
}

// TableStatus pairs a table with its active order, if any.
type TableStatus struct {
	Table       entity.RestaurantTable `json:"table"`
	ActiveOrder *entity.Order          `json:"active_order,omitempty"`
}

// TableStatuses returns every table with its active order attached, the
// floor overview the waiter UI polls.
func (s *TableService) TableStatuses(ctx context.Context) ([]TableStatus, error) {
	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]TableStatus, 0, len(tables))
	for i := range tables {
		status := TableStatus{Table: tables[i]}
		if tables[i].Occupied {
			order, err := s.orderRepo.GetActiveByTable(ctx, tables[i].ID)
			if err != nil {
				return nil, err
			}
			status.ActiveOrder = order
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// OpenTableInput represents the open table input
type OpenTableInput struct {
	EmployeeID uuid.UUID
	Pax        int
}

// OpenTable marks a free table occupied for the given employee and party
// size. Opening an already occupied table is a no-op returning the current
// state, so a double tap on the floor plan does not error.
func (s *TableService) OpenTable(ctx context.Context, tableID uuid.UUID, input *OpenTableInput) (*entity.RestaurantTable, error) {
	table, err := s.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table.Occupied {
		return table, nil
	}
	if input.Pax < 1 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "pax", Message: "pax must be at least 1"},
		})
	}
	if input.Pax > table.Capacity {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "pax", Message: "pax exceeds table capacity"},
		})
	}

	table.Open(input.EmployeeID, input.Pax)
	if err := s.tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// PrepareTable reassigns an occupied table to another employee, keeping
// pax unless a new value is given.
func (s *TableService) PrepareTable(ctx context.Context, tableID, employeeID uuid.UUID, pax *int) (*entity.RestaurantTable, error) {
	table, err := s.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if !table.Occupied {
		return nil, apperror.NewInvalidStateError(apperror.CodeInvalidState, "table is not open")
	}

	table.EmployeeID = &employeeID
	if pax != nil {
		if *pax < 1 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "pax", Message: "pax must be at least 1"},
			})
		}
		table.Pax = pax
	}
	if err := s.tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// UpdatePax changes the party size of an occupied table and mirrors it
// onto the table's active order.
func (s *TableService) UpdatePax(ctx context.Context, tableID uuid.UUID, pax int) (*entity.RestaurantTable, error) {
	table, err := s.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if !table.Occupied {
		return nil, apperror.NewInvalidStateError(apperror.CodeInvalidState, "table is not open")
	}
	if pax < 1 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "pax", Message: "pax must be at least 1"},
		})
	}

	table.Pax = &pax
	if err := s.tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetActiveByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if order != nil {
		order.PaxAmount = pax
		if err := s.orderRepo.Update(ctx, order); err != nil {
			return nil, err
		}
	}
	return table, nil
}
