package handler

import (
	"github.com/gastrosys/pos-api/internal/application/service"
	"github.com/gastrosys/pos-api/internal/presentation/http/dto/request"
	"github.com/gastrosys/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles employee login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	out, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Name:      req.Name,
		LoginCode: req.LoginCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"employee": out.Employee,
		"token":    out.Token,
	})
}

// CreateEmployee handles employee registration (admin only)
func (h *AuthHandler) CreateEmployee(c *gin.Context) {
	var req request.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.authService.CreateEmployee(c.Request.Context(), GetEmployeeRole(c), &service.CreateEmployeeInput{
		Name:      req.Name,
		Role:      req.Role,
		LoginCode: req.LoginCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created successfully", employee)
}

// ListEmployees handles listing all employees
func (h *AuthHandler) ListEmployees(c *gin.Context) {
	employees, err := h.authService.ListEmployees(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Employees retrieved successfully", employees)
}
