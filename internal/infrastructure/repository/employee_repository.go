package repository

import (
	"context"
	"errors"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	domainRepo "github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) domainRepo.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return dbFrom(ctx, r.db).Create(employee).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := dbFrom(ctx, r.db).First(&employee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetByName(ctx context.Context, name string) (*entity.Employee, error) {
	var employee entity.Employee
	err := dbFrom(ctx, r.db).First(&employee, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := dbFrom(ctx, r.db).Order("name ASC").Find(&employees).Error
	return employees, err
}
