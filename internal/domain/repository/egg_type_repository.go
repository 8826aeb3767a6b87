package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/avicola-api/internal/domain/entity"
)

// EggTypeRepository puerto del catálogo de tipos de huevo.
type EggTypeRepository interface {
	Create(ctx context.Context, eggType *entity.EggType) error
	GetByID(ctx context.Context, id string) (*entity.EggType, error)
	List(ctx context.Context) ([]*entity.EggType, error)
	// UpdatePrices actualiza solo los dos precios (admin).
	UpdatePrices(ctx context.Context, id string, trayWholesale, unitRetail decimal.Decimal) error
}
