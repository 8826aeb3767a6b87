package dto

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// CustomerResponse cliente en respuestas HTTP.
type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number,omitempty"`
}
