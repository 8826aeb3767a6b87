package usecase

import (
	"context"

	"github.com/jhoicas/avicola-api/internal/application/dto"
	"github.com/jhoicas/avicola-api/internal/domain"
	"github.com/jhoicas/avicola-api/internal/domain/entity"
	"github.com/jhoicas/avicola-api/internal/domain/repository"
)

// StockQueryUseCase lectura del inventario (fuera del motor de movimientos).
type StockQueryUseCase struct {
	stockRepo   repository.StockRepository
	eggTypeRepo repository.EggTypeRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(stockRepo repository.StockRepository, eggTypeRepo repository.EggTypeRepository) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo, eggTypeRepo: eggTypeRepo}
}

// GetInventory devuelve los buckets de un holder. Un usuario solo puede ver
// su propio inventario; manager/admin pueden consultar el de cualquiera.
func (uc *StockQueryUseCase) GetInventory(ctx context.Context, callerID, callerRole, targetUserID string) ([]*dto.StockResponse, error) {
	holderID := callerID
	if targetUserID != "" && targetUserID != callerID {
		if !entity.IsStaff(callerRole) {
			return nil, domain.ErrForbidden
		}
		holderID = targetUserID
	}

	buckets, err := uc.stockRepo.ListByHolder(ctx, holderID)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	if types, err := uc.eggTypeRepo.List(ctx); err == nil {
		for _, t := range types {
			names[t.ID] = t.Name
		}
	}

	out := make([]*dto.StockResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, &dto.StockResponse{
			HolderID:    b.HolderID,
			EggTypeID:   b.EggTypeID,
			EggTypeName: names[b.EggTypeID],
			GoodEggs:    b.GoodEggs,
			CrackedEggs: b.CrackedEggs,
			SpoiledEggs: b.SpoiledEggs,
			UpdatedAt:   b.UpdatedAt,
		})
	}
	return out, nil
}
