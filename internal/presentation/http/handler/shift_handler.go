package handler

import (
	"github.com/gastrosys/pos-api/internal/application/service"
	"github.com/gastrosys/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ShiftHandler handles shift lifecycle HTTP requests
type ShiftHandler struct {
	shiftService *service.ShiftService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// Start handles opening a shift for the authenticated employee
func (h *ShiftHandler) Start(c *gin.Context) {
	employeeID := GetEmployeeID(c)
	if employeeID == nil {
		response.Unauthorized(c, "Employee not authenticated")
		return
	}

	shift, err := h.shiftService.StartShift(c.Request.Context(), *employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Shift started successfully", shift)
}

// End handles closing the active shift and producing its report
func (h *ShiftHandler) End(c *gin.Context) {
	employeeID := GetEmployeeID(c)
	if employeeID == nil {
		response.Unauthorized(c, "Employee not authenticated")
		return
	}

	rpt, err := h.shiftService.EndShift(c.Request.Context(), *employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Shift ended successfully", rpt)
}

// Active handles retrieving the employee's open shift
func (h *ShiftHandler) Active(c *gin.Context) {
	employeeID := GetEmployeeID(c)
	if employeeID == nil {
		response.Unauthorized(c, "Employee not authenticated")
		return
	}

	shift, err := h.shiftService.GetActiveShift(c.Request.Context(), *employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Active shift retrieved successfully", shift)
}

// Current handles the live in-progress shift report
func (h *ShiftHandler) Current(c *gin.Context) {
	employeeID := GetEmployeeID(c)
	if employeeID == nil {
		response.Unauthorized(c, "Employee not authenticated")
		return
	}

	rpt, err := h.shiftService.CurrentShiftReport(c.Request.Context(), *employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Current shift report retrieved successfully", rpt)
}

// History handles listing the employee's past shifts
func (h *ShiftHandler) History(c *gin.Context) {
	employeeID := GetEmployeeID(c)
	if employeeID == nil {
		response.Unauthorized(c, "Employee not authenticated")
		return
	}

	shifts, err := h.shiftService.ShiftHistory(c.Request.Context(), *employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Shift history retrieved successfully", shifts)
}
