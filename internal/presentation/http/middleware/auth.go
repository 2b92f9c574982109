package middleware

import (
	"strings"

	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/gastrosys/pos-api/internal/presentation/http/dto/response"
	"github.com/gastrosys/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("employee_id", claims.EmployeeID)
		c.Set("employee_name", claims.Name)
		c.Set("employee_role", claims.Role)

		c.Next()
	}
}

// RequireElevated rejects requests from employees without an elevated role
func RequireElevated() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("employee_role")
		role, ok := roleVal.(enum.EmployeeRole)
		if !exists || !ok || !role.Elevated() {
			response.Forbidden(c, "This operation requires a manager or admin role")
			c.Abort()
			return
		}
		c.Next()
	}
}
