package handler

import (
	"github.com/gastrosys/pos-api/internal/application/service"
	"github.com/gastrosys/pos-api/internal/presentation/http/dto/request"
	"github.com/gastrosys/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BillHandler handles billing HTTP requests
type BillHandler struct {
	billService    *service.BillService
	printerService *service.PrinterService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService, printerService *service.PrinterService) *BillHandler {
	return &BillHandler{
		billService:    billService,
		printerService: printerService,
	}
}

// Create handles issuing a bill for a submitted order
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		response.BadRequest(c, "Invalid order id")
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		OrderID:         orderID,
		PaymentMethod:   req.PaymentMethod,
		SplitCashAmount: req.SplitCashAmount,
		SplitCardAmount: req.SplitCardAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Bill created successfully", bill)
}

// Get handles retrieving one bill
func (h *BillHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid bill id")
		return
	}

	bill, err := h.billService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill retrieved successfully", bill)
}

// List handles the paginated bill list
func (h *BillHandler) List(c *gin.Context) {
	result, err := h.billService.ListBills(c.Request.Context(), parsePagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// ByDate handles listing the bills issued on a calendar day
func (h *BillHandler) ByDate(c *gin.Context) {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	bills, err := h.billService.BillsByDate(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bills retrieved successfully", bills)
}

// Pay handles recording or correcting a bill's payment method
func (h *BillHandler) Pay(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid bill id")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.RecordPayment(c.Request.Context(), id, &service.RecordPaymentInput{
		PaymentMethod:   req.PaymentMethod,
		SplitCashAmount: req.SplitCashAmount,
		SplitCardAmount: req.SplitCardAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment recorded successfully", bill)
}

// ProcessPayment handles validating tendered amount and customer-type
// settlement rules
func (h *BillHandler) ProcessPayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid bill id")
		return
	}

	var req request.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.ProcessPaymentInput{
		TotalPaid:    req.TotalPaid,
		CustomerType: req.CustomerType,
	}
	if req.CustomerID != nil {
		customerID, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer id")
			return
		}
		input.CustomerID = &customerID
	}

	bill, err := h.billService.ProcessPayment(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment processed successfully", bill)
}

// PrintReceipt handles printing a bill's receipt
func (h *BillHandler) PrintReceipt(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid bill id")
		return
	}

	receipt, err := h.printerService.PrintBillReceipt(c.Request.Context(), id)
	if err != nil && receipt == nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed", receipt)
}
