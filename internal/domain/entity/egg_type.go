package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EggsPerTray es la conversión fija bandeja -> huevos. Las cantidades de
// bandejas existen solo en el borde de la API; el libro mayor y los registros
// de transacciones trabajan siempre en huevos.
const EggsPerTray = 30

// EggType representa un tipo de huevo del catálogo, con su precio mayorista
// por bandeja y su precio minorista por unidad.
type EggType struct {
	ID                 string
	Name               string // único
	PriceTrayWholesale decimal.Decimal
	PriceUnitRetail    decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// WholesaleUnitPrice devuelve el precio efectivo por huevo en venta mayorista
// (precio de bandeja / 30) como decimal exacto, sin redondeo intermedio.
func (t *EggType) WholesaleUnitPrice() decimal.Decimal {
	return t.PriceTrayWholesale.Div(decimal.NewFromInt(EggsPerTray))
}
