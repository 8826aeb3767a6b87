package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/avicola-api/internal/domain/entity"
	"github.com/jhoicas/avicola-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del log append-only sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: nunca UPDATE ni DELETE.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const txColumns = "id, kind, holder_id, counterparty_id, supplier_name, payment_method, is_credit, due_date, total_amount, sale_category, date, created_at"

// Create persiste la transacción y sus items.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transactions (` + txColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Kind, t.HolderID, t.CounterpartyID, t.SupplierName, t.PaymentMethod,
		t.IsCredit, t.DueDate, t.TotalAmount, t.SaleCategory, t.Date, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	for i := range t.Items {
		item := &t.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.TransactionID = t.ID
		_, err := r.q.Exec(ctx, `
			INSERT INTO transaction_items (id, transaction_id, egg_type_id, quantity_eggs, unit_price)
			VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.TransactionID, item.EggTypeID, item.QuantityEggs, item.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("create transaction item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una transacción con sus items; nil si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions WHERE id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Kind, &t.HolderID, &t.CounterpartyID, &t.SupplierName, &t.PaymentMethod,
		&t.IsCredit, &t.DueDate, &t.TotalAmount, &t.SaleCategory, &t.Date, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	items, err := r.itemsFor(ctx, []string{t.ID})
	if err != nil {
		return nil, err
	}
	t.Items = items[t.ID]
	return &t, nil
}

// ListByHolderAndKind lista transacciones de un holder por kind, más recientes primero.
func (r *TransactionRepo) ListByHolderAndKind(ctx context.Context, holderID, kind string, limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT ` + txColumns + `
		FROM transactions
		WHERE holder_id = $1 AND kind = $2
		ORDER BY date DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, holderID, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	var ids []string
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(
			&t.ID, &t.Kind, &t.HolderID, &t.CounterpartyID, &t.SupplierName, &t.PaymentMethod,
			&t.IsCredit, &t.DueDate, &t.TotalAmount, &t.SaleCategory, &t.Date, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, t := range list {
		t.Items = items[t.ID]
	}
	return list, nil
}

// SalesTotalsSince suma los totales de ventas por categoría desde una fecha.
func (r *TransactionRepo) SalesTotalsSince(ctx context.Context, holderID string, since time.Time) (retail, wholesale decimal.Decimal, err error) {
	query := `
		SELECT COALESCE(SUM(total_amount) FILTER (WHERE sale_category = $3), 0),
		       COALESCE(SUM(total_amount) FILTER (WHERE sale_category = $4), 0)
		FROM transactions
		WHERE holder_id = $1 AND kind = $2 AND date >= $5`
	err = r.q.QueryRow(ctx, query,
		holderID, entity.TxKindSale, entity.SaleCategoryRetail, entity.SaleCategoryWholesale, since,
	).Scan(&retail, &wholesale)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sales totals: %w", err)
	}
	return retail, wholesale, nil
}

// itemsFor carga los items de un conjunto de transacciones en un solo query.
func (r *TransactionRepo) itemsFor(ctx context.Context, txIDs []string) (map[string][]entity.TransactionItem, error) {
	out := make(map[string][]entity.TransactionItem, len(txIDs))
	if len(txIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, transaction_id, egg_type_id, quantity_eggs, unit_price
		FROM transaction_items
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, id`, txIDs)
	if err != nil {
		return nil, fmt.Errorf("list transaction items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.TransactionItem
		if err := rows.Scan(&it.ID, &it.TransactionID, &it.EggTypeID, &it.QuantityEggs, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan transaction item: %w", err)
		}
		out[it.TransactionID] = append(out[it.TransactionID], it)
	}
	return out, rows.Err()
}
