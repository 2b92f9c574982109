package handler

import (
	"github.com/gastrosys/pos-api/internal/application/service"
	"github.com/gastrosys/pos-api/internal/presentation/http/dto/request"
	"github.com/gastrosys/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles opening an order on a table
func (h *OrderHandler) Create(c *gin.Context) {
	employeeID := GetEmployeeID(c)
	if employeeID == nil {
		response.Unauthorized(c, "Employee not authenticated")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tableID, err := uuid.Parse(req.TableID)
	if err != nil {
		response.BadRequest(c, "Invalid table id")
		return
	}

	input := &service.CreateOrderInput{
		TableID:    tableID,
		EmployeeID: *employeeID,
		PaxAmount:  req.PaxAmount,
	}
	if req.CustomerID != nil {
		customerID, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer id")
			return
		}
		input.CustomerID = &customerID
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order created successfully", order)
}

// Get handles retrieving an order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// ByTable handles retrieving the active order for a table
func (h *OrderHandler) ByTable(c *gin.Context) {
	tableID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid table id")
		return
	}

	order, err := h.orderService.ActiveOrderForTable(c.Request.Context(), tableID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// Submit handles sending an order to the kitchen
func (h *OrderHandler) Submit(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	order, err := h.orderService.SubmitOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order submitted successfully", order)
}

// AssignCustomer handles linking a customer to an order
func (h *OrderHandler) AssignCustomer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	var req request.AssignCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer id")
		return
	}

	order, err := h.orderService.AssignCustomer(c.Request.Context(), id, customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer assigned successfully", order)
}

// SetDiscount handles applying an order-wide discount percentage
func (h *OrderHandler) SetDiscount(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	var req request.GlobalDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.SetGlobalDiscount(c.Request.Context(), id, req.Discount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Discount applied successfully", order)
}

// CloseTable handles settling a billed order and freeing its table
func (h *OrderHandler) CloseTable(c *gin.Context) {
	tableID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid table id")
		return
	}

	table, err := h.orderService.CloseTable(c.Request.Context(), tableID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table closed successfully", table)
}

// AddItem handles adding a line item to a table's active order
func (h *OrderHandler) AddItem(c *gin.Context) {
	tableID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid table id")
		return
	}

	employeeID := GetEmployeeID(c)
	if employeeID == nil {
		response.Unauthorized(c, "Employee not authenticated")
		return
	}

	var req request.AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	articleID, err := uuid.Parse(req.ArticleID)
	if err != nil {
		response.BadRequest(c, "Invalid article id")
		return
	}

	item, err := h.orderService.AddItem(c.Request.Context(), tableID, *employeeID, &service.AddItemInput{
		ArticleID: articleID,
		Quantity:  req.Quantity,
		Comment:   req.Comment,
		Discount:  req.Discount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Item added successfully", item)
}

// ListItems handles listing an order's line items
func (h *OrderHandler) ListItems(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order id")
		return
	}

	items, err := h.orderService.ListItems(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Items retrieved successfully", items)
}

// UpdateItemQuantity handles changing a line item's quantity
func (h *OrderHandler) UpdateItemQuantity(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		response.BadRequest(c, "Invalid item id")
		return
	}

	var req request.UpdateItemQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.orderService.UpdateItemQuantity(c.Request.Context(), itemID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item updated successfully", item)
}

// DeleteItem handles removing a line item
func (h *OrderHandler) DeleteItem(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		response.BadRequest(c, "Invalid item id")
		return
	}

	if err := h.orderService.DeleteItem(c.Request.Context(), itemID, GetEmployeeRole(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
