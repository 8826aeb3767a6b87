package repository

import (
	"context"

	"github.com/jhoicas/avicola-api/internal/domain/entity"
)

// StockRepository puerto de persistencia del libro mayor de stock.
// Las implementaciones deben ser usables con pool o con transacción.
type StockRepository interface {
	// Get devuelve el bucket; si no existe, un bucket en cero (no error).
	Get(ctx context.Context, holderID, eggTypeID string) (*entity.Stock, error)
	// GetForUpdate devuelve el bucket bloqueando la fila (SELECT FOR UPDATE).
	// Para buckets aún no materializados devuelve un bucket en cero; el
	// upsert posterior los crea dentro de la misma transacción.
	GetForUpdate(ctx context.Context, holderID, eggTypeID string) (*entity.Stock, error)
	// Upsert inserta o sobreescribe los contadores del bucket.
	Upsert(ctx context.Context, stock *entity.Stock) error
	// ListByHolder lista todos los buckets de un holder.
	ListByHolder(ctx context.Context, holderID string) ([]*entity.Stock, error)
}
