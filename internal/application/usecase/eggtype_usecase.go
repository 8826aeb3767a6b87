package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/avicola-api/internal/application/dto"
	"github.com/jhoicas/avicola-api/internal/domain"
	"github.com/jhoicas/avicola-api/internal/domain/entity"
	"github.com/jhoicas/avicola-api/internal/domain/repository"
)

// EggTypeUseCase casos de uso del catálogo de tipos de huevo.
// El catálogo es ajeno al motor de movimientos: este último solo lo lee.
type EggTypeUseCase struct {
	repo repository.EggTypeRepository
}

// NewEggTypeUseCase construye el caso de uso.
func NewEggTypeUseCase(repo repository.EggTypeRepository) *EggTypeUseCase {
	return &EggTypeUseCase{repo: repo}
}

// Create crea un tipo de huevo (solo admin, chequeado en el router).
func (uc *EggTypeUseCase) Create(ctx context.Context, in dto.CreateEggTypeRequest) (*dto.EggTypeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PriceTrayWholesale.LessThanOrEqual(decimal.Zero) || in.PriceUnitRetail.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	eggType := &entity.EggType{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		PriceTrayWholesale: in.PriceTrayWholesale,
		PriceUnitRetail:    in.PriceUnitRetail,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(ctx, eggType); err != nil {
		return nil, err
	}
	return toEggTypeResponse(eggType), nil
}

// List lista el catálogo completo (es pequeño, sin paginación).
func (uc *EggTypeUseCase) List(ctx context.Context) ([]*dto.EggTypeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EggTypeResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toEggTypeResponse(t))
	}
	return out, nil
}

// UpdatePrices actualiza los dos precios de un tipo (solo admin).
func (uc *EggTypeUseCase) UpdatePrices(ctx context.Context, id string, in dto.UpdatePricesRequest) error {
	if in.PriceTrayWholesale.LessThanOrEqual(decimal.Zero) || in.PriceUnitRetail.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdatePrices(ctx, id, in.PriceTrayWholesale, in.PriceUnitRetail)
}

func toEggTypeResponse(t *entity.EggType) *dto.EggTypeResponse {
	return &dto.EggTypeResponse{
		ID:                 t.ID,
		Name:               t.Name,
		PriceTrayWholesale: t.PriceTrayWholesale,
		PriceUnitRetail:    t.PriceUnitRetail,
	}
}
