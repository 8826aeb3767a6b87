package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse resumen del día para el holder autenticado:
// ventas por categoría y bandejas completas en mano (huevos buenos / 30).
type DashboardStatsResponse struct {
	RetailSales    decimal.Decimal `json:"retail_sales"`
	WholesaleSales decimal.Decimal `json:"wholesale_sales"`
	TotalTrays     int64           `json:"total_trays"`
}
