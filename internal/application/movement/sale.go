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

// Sell registra una venta retail o mayorista contra el bucket del caller.
// Reglas de negocio en orden, gana el primer fallo:
//  1. RETAIL no puede ser a crédito.
//  2. CREDIT exige cliente.
//  3. WHOLESALE vende bandejas (huevos = qty*30, precio = bandeja/30);
//     RETAIL vende huevos sueltos al precio unitario del catálogo.
//  4. La suficiencia se chequea contra un snapshot en memoria que se va
//     descontando línea a línea, así varias líneas del mismo tipo acumulan
//     su descuento; si una línea falla, la venta entera se rechaza antes de
//     mutar nada.
//  5. El total se acumula sin redondeo intermedio.
//  6. Crédito vence a los 3 días.
func (uc *MovementUseCase) Sell(ctx context.Context, actor Actor, in dto.SaleRequest) (*dto.TransactionResponse, error) {
	if in.Type != entity.SaleCategoryRetail && in.Type != entity.SaleCategoryWholesale {
		return nil, fmt.Errorf("%w: categoría de venta desconocida", domain.ErrInvalidInput)
	}
	switch in.PaymentMethod {
	case entity.PaymentCash, entity.PaymentMpesa, entity.PaymentCredit:
	default:
		return nil, fmt.Errorf("%w: método de pago desconocido", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la venta necesita al menos una línea", domain.ErrInvalidInput)
	}
	isCredit := in.PaymentMethod == entity.PaymentCredit
	if in.Type == entity.SaleCategoryRetail && isCredit {
		return nil, fmt.Errorf("%w: la venta retail no puede ser a crédito", domain.ErrInvalidInput)
	}
	if isCredit && in.CustomerID == "" {
		return nil, fmt.Errorf("%w: la venta a crédito requiere cliente", domain.ErrInvalidInput)
	}
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
	}

	// Resolver catálogo y conversión de unidades fuera de la tx (solo lectura).
	eggTypes := map[string]*entity.EggType{}
	lines := make([]entity.TransactionItem, 0, len(in.Items))
	itemEggTypes := make([]string, 0, len(in.Items))
	total := decimal.Zero
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: la cantidad de cada línea debe ser positiva", domain.ErrInvalidInput)
		}
		eggType, ok := eggTypes[item.EggTypeID]
		if !ok {
			var err error
			eggType, err = uc.eggTypeRepo.GetByID(ctx, item.EggTypeID)
			if err != nil {
				return nil, err
			}
			if eggType == nil {
				return nil, fmt.Errorf("%w: tipo de huevo %s", domain.ErrNotFound, item.EggTypeID)
			}
			eggTypes[item.EggTypeID] = eggType
		}

		var quantityEggs int64
		var unitPrice decimal.Decimal
		if in.Type == entity.SaleCategoryWholesale {
			quantityEggs = item.Quantity * entity.EggsPerTray
			unitPrice = eggType.WholesaleUnitPrice()
		} else {
			quantityEggs = item.Quantity
			unitPrice = eggType.PriceUnitRetail
		}
		total = total.Add(unitPrice.Mul(decimal.NewFromInt(quantityEggs)))
		lines = append(lines, entity.TransactionItem{
			EggTypeID:    item.EggTypeID,
			QuantityEggs: quantityEggs,
			UnitPrice:    unitPrice,
		})
		itemEggTypes = append(itemEggTypes, item.EggTypeID)
	}

	now := time.Now()
	saleCategory := in.Type
	record := &entity.Transaction{
		ID:            uuid.New().String(),
		Kind:          entity.TxKindSale,
		HolderID:      actor.UserID,
		PaymentMethod: &in.PaymentMethod,
		IsCredit:      isCredit,
		TotalAmount:   total,
		SaleCategory:  &saleCategory,
		Date:          now,
		CreatedAt:     now,
		Items:         lines,
	}
	if in.CustomerID != "" {
		record.CounterpartyID = &in.CustomerID
	}
	if isCredit {
		due := now.Add(entity.CreditDueIn)
		record.DueDate = &due
	}

	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, txRepo repository.TransactionRepository) error {
		// Bloquear los buckets afectados en orden de clave.
		snapshots := map[string]*entity.Stock{}
		for _, eggTypeID := range sortedBucketEggTypes(actor.UserID, itemEggTypes) {
			s, err := stockRepo.GetForUpdate(ctx, actor.UserID, eggTypeID)
			if err != nil {
				return err
			}
			snapshots[eggTypeID] = s
		}
		// Descontar línea a línea sobre el snapshot: líneas repetidas del
		// mismo tipo acumulan antes del chequeo de las siguientes.
		for _, line := range lines {
			s := snapshots[line.EggTypeID]
			if err := s.ApplyDelta(-line.QuantityEggs, 0, 0); err != nil {
				return withEggTypeName(err, eggTypes[line.EggTypeID].Name)
			}
		}
		for _, s := range snapshots {
			s.UpdatedAt = now
			if err := stockRepo.Upsert(ctx, s); err != nil {
				return err
			}
		}
		return txRepo.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return dto.FromTransaction(record), nil
}
