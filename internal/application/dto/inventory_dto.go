package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockInRequest body para POST /api/inventory (entrada de stock por compra).
// Las cantidades llegan en bandejas; la conversión a huevos es del motor.
type StockInRequest struct {
	EggTypeID     string          `json:"egg_type_id" validate:"required"`
	QuantityTrays int64           `json:"quantity_trays" validate:"required,gt=0"`
	CostPerTray   decimal.Decimal `json:"cost_per_tray"`
	SupplierName  string          `json:"supplier_name,omitempty"`
}

// TransferRequest body para POST /api/inventory/transfer (manager -> vendedor).
type TransferRequest struct {
	ToUserID      string `json:"to_user_id" validate:"required"`
	EggTypeID     string `json:"egg_type_id" validate:"required"`
	QuantityTrays int64  `json:"quantity_trays" validate:"required,gt=0"`
}

// DamageRequest body para POST /api/inventory/damages.
// Invariante: QuantityCracked + QuantitySpoiled == QuantityDamaged.
type DamageRequest struct {
	EggTypeID       string `json:"egg_type_id" validate:"required"`
	QuantityDamaged int64  `json:"quantity_damaged" validate:"required,gt=0"`
	QuantityCracked int64  `json:"quantity_cracked" validate:"min=0"`
	QuantitySpoiled int64  `json:"quantity_spoiled" validate:"min=0"`
}

// StockResponse bucket de inventario en respuestas HTTP.
type StockResponse struct {
	HolderID    string    `json:"holder_id"`
	EggTypeID   string    `json:"egg_type_id"`
	EggTypeName string    `json:"egg_type_name,omitempty"`
	GoodEggs    int64     `json:"good_eggs"`
	CrackedEggs int64     `json:"cracked_eggs"`
	SpoiledEggs int64     `json:"spoiled_eggs"`
	UpdatedAt   time.Time `json:"updated_at"`
}
