package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/avicola-api/internal/domain/entity"
	"github.com/jhoicas/avicola-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = "holder_id, egg_type_id, good_eggs, cracked_eggs, spoiled_eggs, updated_at"

// Get obtiene el bucket de un holder y tipo de huevo; bucket en cero si no existe.
func (r *StockRepo) Get(ctx context.Context, holderID, eggTypeID string) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock WHERE holder_id = $1 AND egg_type_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, holderID, eggTypeID).Scan(
		&s.HolderID, &s.EggTypeID, &s.GoodEggs, &s.CrackedEggs, &s.SpoiledEggs, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{HolderID: holderID, EggTypeID: eggTypeID}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el bucket bloqueando la fila (SELECT FOR UPDATE).
// Si el bucket aún no existe, primero materializa la fila en cero y vuelve a
// seleccionar con lock: un SELECT FOR UPDATE sobre cero filas no bloquea
// nada, y dos creaciones concurrentes del mismo bucket leerían ambas el
// estado en cero y la segunda escritura pisaría a la primera. Con la fila
// materializada el lock siempre existe y las transacciones se serializan.
func (r *StockRepo) GetForUpdate(ctx context.Context, holderID, eggTypeID string) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock WHERE holder_id = $1 AND egg_type_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, holderID, eggTypeID).Scan(
		&s.HolderID, &s.EggTypeID, &s.GoodEggs, &s.CrackedEggs, &s.SpoiledEggs, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		// DO NOTHING: si otra tx ya la insertó, el re-SELECT bloqueará sobre
		// su fila y leerá los contadores que ella commitee.
		_, err = r.q.Exec(ctx, `
			INSERT INTO stock (holder_id, egg_type_id, good_eggs, cracked_eggs, spoiled_eggs, updated_at)
			VALUES ($1, $2, 0, 0, 0, now())
			ON CONFLICT (holder_id, egg_type_id) DO NOTHING`,
			holderID, eggTypeID,
		)
		if err != nil {
			return nil, fmt.Errorf("materialize stock row: %w", err)
		}
		err = r.q.QueryRow(ctx, query, holderID, eggTypeID).Scan(
			&s.HolderID, &s.EggTypeID, &s.GoodEggs, &s.CrackedEggs, &s.SpoiledEggs, &s.UpdatedAt,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o sobreescribe los contadores del bucket. Los CHECK de la
// tabla (contadores >= 0) son el respaldo del invariante que el dominio ya
// garantiza antes de llegar aquí.
func (r *StockRepo) Upsert(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO stock (holder_id, egg_type_id, good_eggs, cracked_eggs, spoiled_eggs, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (holder_id, egg_type_id)
		DO UPDATE SET good_eggs = EXCLUDED.good_eggs,
		              cracked_eggs = EXCLUDED.cracked_eggs,
		              spoiled_eggs = EXCLUDED.spoiled_eggs,
		              updated_at = now()`
	_, err := r.q.Exec(ctx, query,
		stock.HolderID, stock.EggTypeID, stock.GoodEggs, stock.CrackedEggs, stock.SpoiledEggs,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByHolder lista todos los buckets de un holder.
func (r *StockRepo) ListByHolder(ctx context.Context, holderID string) ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock WHERE holder_id = $1
		ORDER BY egg_type_id`
	rows, err := r.q.Query(ctx, query, holderID)
	if err != nil {
		return nil, fmt.Errorf("list stock by holder: %w", err)
	}
	defer rows.Close()

	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.HolderID, &s.EggTypeID, &s.GoodEggs, &s.CrackedEggs, &s.SpoiledEggs, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
