package request

// OpenTableRequest represents the open table request body
type OpenTableRequest struct {
	Pax int `json:"pax" binding:"required,min=1"`
}

// PrepareTableRequest represents the prepare table request body
type PrepareTableRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Pax        *int   `json:"pax" binding:"omitempty,min=1"`
}

// UpdatePaxRequest represents the update pax request body
type UpdatePaxRequest struct {
	Pax int `json:"pax" binding:"required,min=1"`
}
