package usecase

import (
	"context"

	"github.com/jhoicas/avicola-api/internal/application/dto"
	"github.com/jhoicas/avicola-api/internal/domain/entity"
	"github.com/jhoicas/avicola-api/internal/domain/repository"
)

// SalesHistoryUseCase lectura del log de ventas del holder autenticado.
type SalesHistoryUseCase struct {
	txRepo repository.TransactionRepository
}

// NewSalesHistoryUseCase construye el caso de uso.
func NewSalesHistoryUseCase(txRepo repository.TransactionRepository) *SalesHistoryUseCase {
	return &SalesHistoryUseCase{txRepo: txRepo}
}

// History lista las ventas del holder, más recientes primero.
func (uc *SalesHistoryUseCase) History(ctx context.Context, holderID string, page dto.PageRequest) ([]*dto.TransactionResponse, error) {
	page.DefaultPage()
	list, err := uc.txRepo.ListByHolderAndKind(ctx, holderID, entity.TxKindSale, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.FromTransaction(t))
	}
	return out, nil
}
