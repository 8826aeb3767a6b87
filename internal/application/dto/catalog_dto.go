package dto

import "github.com/shopspring/decimal"

// CreateEggTypeRequest body para POST /api/egg-types (admin).
type CreateEggTypeRequest struct {
	Name               string          `json:"name" validate:"required,min=1"`
	PriceTrayWholesale decimal.Decimal `json:"price_tray_wholesale"`
	PriceUnitRetail    decimal.Decimal `json:"price_unit_retail"`
}

// UpdatePricesRequest body para PUT /api/egg-types/:id/prices (admin).
type UpdatePricesRequest struct {
	PriceTrayWholesale decimal.Decimal `json:"price_tray_wholesale"`
	PriceUnitRetail    decimal.Decimal `json:"price_unit_retail"`
}

// EggTypeResponse tipo de huevo en respuestas HTTP.
type EggTypeResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	PriceTrayWholesale decimal.Decimal `json:"price_tray_wholesale"`
	PriceUnitRetail    decimal.Decimal `json:"price_unit_retail"`
}
