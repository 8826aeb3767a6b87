package dto

// SaleItemRequest línea de venta. En WHOLESALE Quantity son bandejas,
// en RETAIL son huevos; la conversión la resuelve el motor de movimientos.
type SaleItemRequest struct {
	EggTypeID string `json:"egg_type_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// SaleRequest body para POST /api/sales.
type SaleRequest struct {
	Type          string            `json:"type" validate:"required,oneof=RETAIL WHOLESALE"`
	CustomerID    string            `json:"customer_id,omitempty"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=CASH MPESA CREDIT"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}
