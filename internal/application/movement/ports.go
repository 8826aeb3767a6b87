package movement

import (
	"context"

	"github.com/jhoicas/avicola-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del motor de
// movimientos: mutación de stock y registro en el log commitean o se
// revierten como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// Actor identifica al usuario autenticado que dispara la operación.
// Viene del token JWT; el motor confía en él y solo aplica chequeos de rol.
type Actor struct {
	UserID string
	Role   string
}
