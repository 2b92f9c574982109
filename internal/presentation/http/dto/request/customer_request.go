package request

// CustomerRequest represents the create/update customer request body
type CustomerRequest struct {
	Name         string  `json:"name"`
	CustomerType string  `json:"customer_type"`
	Contact      *string `json:"contact"`
	VatNumber    *string `json:"vat_number"`
	Address      *string `json:"address"`
}
