package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/avicola-api/internal/application/dto"
	"github.com/jhoicas/avicola-api/internal/domain/entity"
	"github.com/jhoicas/avicola-api/internal/domain/repository"
)

// DashboardUseCase resumen del día para la pantalla principal.
type DashboardUseCase struct {
	txRepo    repository.TransactionRepository
	stockRepo repository.StockRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(txRepo repository.TransactionRepository, stockRepo repository.StockRepository) *DashboardUseCase {
	return &DashboardUseCase{txRepo: txRepo, stockRepo: stockRepo}
}

// Stats devuelve las ventas de hoy por categoría y las bandejas completas en
// mano (huevos buenos / 30 por bucket, piso).
func (uc *DashboardUseCase) Stats(ctx context.Context, holderID string) (*dto.DashboardStatsResponse, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	retail, wholesale, err := uc.txRepo.SalesTotalsSince(ctx, holderID, startOfDay)
	if err != nil {
		return nil, err
	}

	buckets, err := uc.stockRepo.ListByHolder(ctx, holderID)
	if err != nil {
		return nil, err
	}
	var totalTrays int64
	for _, b := range buckets {
		totalTrays += b.GoodEggs / entity.EggsPerTray
	}

	return &dto.DashboardStatsResponse{
		RetailSales:    retail,
		WholesaleSales: wholesale,
		TotalTrays:     totalTrays,
	}, nil
}
