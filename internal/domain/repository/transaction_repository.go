package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/avicola-api/internal/domain/entity"
)

// TransactionRepository puerto del log append-only de transacciones.
// Solo inserta y lee; nunca actualiza ni borra registros existentes.
type TransactionRepository interface {
	// Create persiste la transacción y sus items. No computa nada: todos los
	// valores derivados llegan ya calculados por el motor de movimientos.
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	// ListByHolderAndKind lista transacciones de un holder por kind,
	// más recientes primero.
	ListByHolderAndKind(ctx context.Context, holderID, kind string, limit, offset int) ([]*entity.Transaction, error)
	// SalesTotalsSince suma los totales de ventas de un holder desde una
	// fecha, separados por categoría (para el dashboard).
	SalesTotalsSince(ctx context.Context, holderID string, since time.Time) (retail, wholesale decimal.Decimal, err error)
}
