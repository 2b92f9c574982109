package handler

import (
	"time"

	"github.com/gastrosys/pos-api/internal/domain/enum"
	"github.com/gastrosys/pos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetEmployeeID extracts the authenticated employee's id from the context
func GetEmployeeID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get("employee_id")
	if !exists {
		return nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

// GetEmployeeRole extracts the authenticated employee's role, defaulting
// to waiter when unset
func GetEmployeeRole(c *gin.Context) enum.EmployeeRole {
	val, exists := c.Get("employee_role")
	if !exists {
		return enum.RoleWaiter
	}
	role, ok := val.(enum.EmployeeRole)
	if !ok {
		return enum.RoleWaiter
	}
	return role
}

// parseUUIDParam parses a path parameter as a UUID
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parseDateQuery parses a query parameter as a 2006-01-02 date, falling
// back to today when absent
func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Now().Truncate(24 * time.Hour), true
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// parseRangeQuery parses start/end query parameters as dates. Both are
// required.
func parseRangeQuery(c *gin.Context) (start, end time.Time, ok bool) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse("2006-01-02", c.Query("end"))
	if err != nil || end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// parsePagination binds page/per_page query parameters
func parsePagination(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	_ = c.ShouldBindQuery(params)
	params.Validate()
	return params
}
