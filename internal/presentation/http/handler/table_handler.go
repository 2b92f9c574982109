package handler

import (
	"github.com/gastrosys/pos-api/internal/application/service"
	"github.com/gastrosys/pos-api/internal/presentation/http/dto/request"
	"github.com/gastrosys/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TableHandler handles dining room table HTTP requests
type TableHandler struct {
	tableService *service.TableService
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableService *service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// List handles listing all tables
func (h *TableHandler) List(c *gin.Context) {
	tables, err := h.tableService.ListTables(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tables retrieved successfully", tables)
}

// Get handles retrieving one table
func (h *TableHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid table id")
		return
	}

	table, err := h.tableService.GetTable(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table retrieved successfully", table)
}

// Statuses handles the floor overview with active orders
func (h *TableHandler) Statuses(c *gin.Context) {
	statuses, err := h.tableService.TableStatuses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table statuses retrieved successfully", statuses)
}

// Open handles opening a table for the authenticated employee
func (h *TableHandler) Open(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid table id")
		return
	}

	employeeID := GetEmployeeID(c)
	if employeeID == nil {
		response.Unauthorized(c, "Employee not authenticated")
		return
	}

	var req request.OpenTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	table, err := h.tableService.OpenTable(c.Request.Context(), id, &service.OpenTableInput{
		EmployeeID: *employeeID,
		Pax:        req.Pax,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table opened successfully", table)
}

// Prepare handles reassigning an occupied table to another employee
func (h *TableHandler) Prepare(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid table id")
		return
	}

	var req request.PrepareTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		response.BadRequest(c, "Invalid employee id")
		return
	}

	table, err := h.tableService.PrepareTable(c.Request.Context(), id, employeeID, req.Pax)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table prepared successfully", table)
}

// UpdatePax handles changing the party size of an open table
func (h *TableHandler) UpdatePax(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid table id")
		return
	}

	var req request.UpdatePaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	table, err := h.tableService.UpdatePax(c.Request.Context(), id, req.Pax)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table updated successfully", table)
}
