package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/avicola-api/internal/domain/entity"
)

// TransactionItemResponse línea de una transacción en respuestas HTTP.
type TransactionItemResponse struct {
	EggTypeID    string          `json:"egg_type_id"`
	QuantityEggs int64           `json:"quantity_eggs"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// TransactionResponse registro del log de transacciones en respuestas HTTP.
type TransactionResponse struct {
	ID             string                    `json:"id"`
	Kind           string                    `json:"kind"`
	HolderID       string                    `json:"holder_id"`
	CounterpartyID *string                   `json:"counterparty_id,omitempty"`
	SupplierName   *string                   `json:"supplier_name,omitempty"`
	PaymentMethod  *string                   `json:"payment_method,omitempty"`
	IsCredit       bool                      `json:"is_credit"`
	DueDate        *time.Time                `json:"due_date,omitempty"`
	TotalAmount    decimal.Decimal           `json:"total_amount"`
	SaleCategory   *string                   `json:"sale_category,omitempty"`
	Date           time.Time                 `json:"date"`
	Items          []TransactionItemResponse `json:"items"`
}

// FromTransaction mapea la entidad a su respuesta HTTP.
func FromTransaction(t *entity.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}
	items := make([]TransactionItemResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, TransactionItemResponse{
			EggTypeID:    it.EggTypeID,
			QuantityEggs: it.QuantityEggs,
			UnitPrice:    it.UnitPrice,
		})
	}
	return &TransactionResponse{
		ID:             t.ID,
		Kind:           t.Kind,
		HolderID:       t.HolderID,
		CounterpartyID: t.CounterpartyID,
		SupplierName:   t.SupplierName,
		PaymentMethod:  t.PaymentMethod,
		IsCredit:       t.IsCredit,
		DueDate:        t.DueDate,
		TotalAmount:    t.TotalAmount,
		SaleCategory:   t.SaleCategory,
		Date:           t.Date,
		Items:          items,
	}
}
