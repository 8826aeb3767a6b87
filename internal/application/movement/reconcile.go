package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/avicola-api/internal/application/dto"
	"github.com/jhoicas/avicola-api/internal/domain"
	"github.com/jhoicas/avicola-api/internal/domain/entity"
	"github.com/jhoicas/avicola-api/internal/domain/repository"
)

// Reconcile fuerza los buckets de un vendedor a su conteo físico.
// Por cada item: varianza = actualGood - goodEggs del libro (0 si el bucket
// no existe) y sobreescritura absoluta de los tres contadores — es la única
// operación que mueve contadores en ambas direcciones sin chequeo de
// suficiencia. Los tipos de huevo no mencionados no se tocan.
// Solo manager/admin.
func (uc *MovementUseCase) Reconcile(ctx context.Context, actor Actor, in dto.ReconciliationRequest) (*dto.TransactionResponse, error) {
	if !entity.IsStaff(actor.Role) {
		return nil, domain.ErrForbidden
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la reconciliación necesita al menos un conteo", domain.ErrInvalidInput)
	}
	seen := map[string]bool{}
	for _, item := range in.Items {
		if item.EggTypeID == "" {
			return nil, domain.ErrInvalidInput
		}
		if item.ActualGood < 0 || item.ActualCracked < 0 || item.ActualSpoiled < 0 {
			return nil, fmt.Errorf("%w: los conteos físicos no pueden ser negativos", domain.ErrInvalidInput)
		}
		if seen[item.EggTypeID] {
			return nil, fmt.Errorf("%w: tipo de huevo repetido en el conteo", domain.ErrInvalidInput)
		}
		seen[item.EggTypeID] = true
		eggType, err := uc.eggTypeRepo.GetByID(ctx, item.EggTypeID)
		if err != nil {
			return nil, err
		}
		if eggType == nil {
			return nil, fmt.Errorf("%w: tipo de huevo %s", domain.ErrNotFound, item.EggTypeID)
		}
	}
	subject, err := uc.userRepo.GetByID(ctx, in.SalesPersonID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	record := &entity.Transaction{
		ID:          uuid.New().String(),
		Kind:        entity.TxKindReconciliation,
		HolderID:    in.SalesPersonID,
		TotalAmount: decimal.Zero,
		Date:        now,
		CreatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, txRepo repository.TransactionRepository) error {
		ids := make([]string, 0, len(in.Items))
		for _, item := range in.Items {
			ids = append(ids, item.EggTypeID)
		}
		locked := map[string]*entity.Stock{}
		for _, eggTypeID := range sortedBucketEggTypes(in.SalesPersonID, ids) {
			s, err := stockRepo.GetForUpdate(ctx, in.SalesPersonID, eggTypeID)
			if err != nil {
				return err
			}
			locked[eggTypeID] = s
		}

		items := make([]entity.TransactionItem, 0, len(in.Items))
		for _, item := range in.Items {
			s := locked[item.EggTypeID]
			variance := item.ActualGood - s.GoodEggs
			if err := s.SetAbsolute(item.ActualGood, item.ActualCracked, item.ActualSpoiled); err != nil {
				return err
			}
			s.UpdatedAt = now
			if err := stockRepo.Upsert(ctx, s); err != nil {
				return err
			}
			items = append(items, entity.TransactionItem{
				EggTypeID:    item.EggTypeID,
				QuantityEggs: variance, // puede ser negativo: faltante contra el libro
				UnitPrice:    decimal.Zero,
			})
		}
		record.Items = items
		return txRepo.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return dto.FromTransaction(record), nil
}
