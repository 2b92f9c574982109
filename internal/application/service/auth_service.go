package service

import (
	"context"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/gastrosys/pos-api/pkg/apperror"
	"github.com/gastrosys/pos-api/pkg/utils"
)

// AuthService handles employee authentication
type AuthService struct {
	employeeRepo repository.EmployeeRepository
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(employeeRepo repository.EmployeeRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		jwtManager:   jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Name      string
	LoginCode string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Employee *entity.Employee
	Token    string
}

// Login authenticates an employee by name and login code
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	employee, err := s.employeeRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.ErrInvalidLogin
	}

	if !utils.CheckLoginCode(input.LoginCode, employee.LoginCodeHash) {
		return nil, apperror.ErrInvalidLogin
	}

	token, err := s.jwtManager.GenerateToken(employee.ID, employee.Name, employee.Role)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Employee: employee, Token: token}, nil
}

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	Name      string
	Role      string
	LoginCode string
}

// CreateEmployee registers a new employee. Caller must hold the admin role.
func (s *AuthService) CreateEmployee(ctx context.Context, callerRole enum.EmployeeRole, input *CreateEmployeeInput) (*entity.Employee, error) {
	if callerRole != enum.RoleAdmin {
		return nil, apperror.ErrForbidden
	}
	if input.Name == "" || input.LoginCode == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "name and login_code are required"},
		})
	}

	existing, err := s.employeeRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("employee name already in use")
	}

	hash, err := utils.HashLoginCode(input.LoginCode)
	if err != nil {
		return nil, err
	}

	employee := &entity.Employee{
		Name:          input.Name,
		Role:          enum.ParseEmployeeRole(input.Role),
		LoginCodeHash: hash,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// ListEmployees returns all employees
func (s *AuthService) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	return s.employeeRepo.List(ctx)
}
