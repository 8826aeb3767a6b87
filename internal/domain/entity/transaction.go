package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kinds de transacción del libro de movimientos.
const (
	TxKindStockIn        = "STOCK_IN"       // compra a proveedor, entra stock
	TxKindIssue          = "ISSUE"          // traspaso manager -> vendedor
	TxKindSale           = "SALE"           // venta retail o mayorista
	TxKindDamage         = "DAMAGE"         // reporte de daño (quebrados/podridos)
	TxKindReconciliation = "RECONCILIATION" // conteo físico vs libro
)

// Categorías de venta.
const (
	SaleCategoryRetail    = "RETAIL"
	SaleCategoryWholesale = "WHOLESALE"
)

// Métodos de pago aceptados.
const (
	PaymentCash   = "CASH"
	PaymentMpesa  = "MPESA"
	PaymentCredit = "CREDIT"
)

// CreditDueIn es el plazo de pago de una venta a crédito.
const CreditDueIn = 72 * time.Hour

// Transaction es un registro inmutable del log append-only: cada evento que
// afecta stock crea exactamente uno, con uno o más items. HolderID es el
// holder cuyo bucket se afecta principalmente (vendedor en SALE/DAMAGE,
// origen en ISSUE, sujeto reconciliado en RECONCILIATION).
type Transaction struct {
	ID             string
	Kind           string
	HolderID       string
	CounterpartyID *string // cliente en SALE a crédito, holder destino en ISSUE
	SupplierName   *string // solo STOCK_IN
	PaymentMethod  *string // solo SALE
	IsCredit       bool
	DueDate        *time.Time
	TotalAmount    decimal.Decimal
	SaleCategory   *string // RETAIL | WHOLESALE, solo SALE
	Date           time.Time
	CreatedAt      time.Time
	Items          []TransactionItem
}

// TransactionItem es una línea del registro. QuantityEggs siempre en huevos
// (nunca bandejas); puede ser negativo solo en líneas de varianza de
// RECONCILIATION.
type TransactionItem struct {
	ID            string
	TransactionID string
	EggTypeID     string
	QuantityEggs  int64
	UnitPrice     decimal.Decimal
}
