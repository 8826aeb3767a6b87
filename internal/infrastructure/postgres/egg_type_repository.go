package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/avicola-api/internal/domain"
	"github.com/jhoicas/avicola-api/internal/domain/entity"
	"github.com/jhoicas/avicola-api/internal/domain/repository"
)

var _ repository.EggTypeRepository = (*EggTypeRepo)(nil)

// EggTypeRepo implementación del catálogo sobre PostgreSQL.
type EggTypeRepo struct {
	q Querier
}

// NewEggTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEggTypeRepository(q Querier) *EggTypeRepo {
	return &EggTypeRepo{q: q}
}

const eggTypeColumns = "id, name, price_tray_wholesale, price_unit_retail, created_at, updated_at"

// Create persiste un tipo de huevo; el nombre es único.
func (r *EggTypeRepo) Create(ctx context.Context, t *entity.EggType) error {
	query := `
		INSERT INTO egg_types (` + eggTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Name, t.PriceTrayWholesale, t.PriceUnitRetail, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert egg type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo por ID; nil si no existe.
func (r *EggTypeRepo) GetByID(ctx context.Context, id string) (*entity.EggType, error) {
	query := `SELECT ` + eggTypeColumns + ` FROM egg_types WHERE id = $1`
	var t entity.EggType
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.PriceTrayWholesale, &t.PriceUnitRetail, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get egg type: %w", err)
	}
	return &t, nil
}

// List lista el catálogo ordenado por nombre.
func (r *EggTypeRepo) List(ctx context.Context) ([]*entity.EggType, error) {
	rows, err := r.q.Query(ctx, `SELECT `+eggTypeColumns+` FROM egg_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list egg types: %w", err)
	}
	defer rows.Close()
	var list []*entity.EggType
	for rows.Next() {
		var t entity.EggType
		if err := rows.Scan(&t.ID, &t.Name, &t.PriceTrayWholesale, &t.PriceUnitRetail, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan egg type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// UpdatePrices actualiza solo los dos precios.
func (r *EggTypeRepo) UpdatePrices(ctx context.Context, id string, trayWholesale, unitRetail decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE egg_types
		SET price_tray_wholesale = $2, price_unit_retail = $3, updated_at = now()
		WHERE id = $1`, id, trayWholesale, unitRetail)
	if err != nil {
		return fmt.Errorf("update egg type prices: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
