package dto

// ReconciliationItemRequest conteo físico de un tipo de huevo.
type ReconciliationItemRequest struct {
	EggTypeID     string `json:"egg_type_id" validate:"required"`
	ActualGood    int64  `json:"actual_good" validate:"min=0"`
	ActualCracked int64  `json:"actual_cracked" validate:"min=0"`
	ActualSpoiled int64  `json:"actual_spoiled" validate:"min=0"`
}

// ReconciliationRequest body para POST /api/reconciliation.
// Los tipos de huevo no mencionados en Items no se tocan.
type ReconciliationRequest struct {
	SalesPersonID string                      `json:"sales_person_id" validate:"required"`
	Items         []ReconciliationItemRequest `json:"items" validate:"required,min=1,dive"`
}
