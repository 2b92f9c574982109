package request

// LoginRequest represents the login request body
type LoginRequest struct {
	Name      string `json:"name" binding:"required"`
	LoginCode string `json:"login_code" binding:"required"`
}

// CreateEmployeeRequest represents the create employee request body
type CreateEmployeeRequest struct {
	Name      string `json:"name" binding:"required"`
	Role      string `json:"role"`
	LoginCode string `json:"login_code" binding:"required,min=4"`
}
