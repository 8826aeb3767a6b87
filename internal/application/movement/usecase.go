package movement

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/avicola-api/internal/application/dto"
	"github.com/jhoicas/avicola-api/internal/domain"
	"github.com/jhoicas/avicola-api/internal/domain/entity"
	"github.com/jhoicas/avicola-api/internal/domain/repository"
)

// MovementUseCase es el motor de movimientos: las cinco operaciones que
// mutan buckets de stock (entrada, traspaso, venta, daño, reconciliación).
// Cada operación valida, bloquea las filas afectadas (SELECT FOR UPDATE),
// muta el libro mayor y apendea el registro en el log, todo dentro de una
// transacción del TxRunner. Si una validación o chequeo de stock falla, ni
// el libro ni el log se tocan.
type MovementUseCase struct {
	txRunner     TxRunner
	eggTypeRepo  repository.EggTypeRepository
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
}

// NewMovementUseCase construye el motor.
func NewMovementUseCase(
	txRunner TxRunner,
	eggTypeRepo repository.EggTypeRepository,
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		eggTypeRepo:  eggTypeRepo,
		userRepo:     userRepo,
		customerRepo: customerRepo,
	}
}

// StockIn registra una compra a proveedor: +bandejas*30 huevos buenos en el
// bucket del caller y un registro STOCK_IN con el costo por bandeja como
// precio unitario de la línea. Solo manager/admin.
func (uc *MovementUseCase) StockIn(ctx context.Context, actor Actor, in dto.StockInRequest) (*dto.TransactionResponse, error) {
	if !entity.IsStaff(actor.Role) {
		return nil, domain.ErrForbidden
	}
	if in.QuantityTrays <= 0 {
		return nil, fmt.Errorf("%w: la cantidad de bandejas debe ser positiva", domain.ErrInvalidInput)
	}
	if !in.CostPerTray.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: el costo por bandeja debe ser positivo", domain.ErrInvalidInput)
	}
	eggType, err := uc.eggTypeRepo.GetByID(ctx, in.EggTypeID)
	if err != nil {
		return nil, err
	}
	if eggType == nil {
		return nil, domain.ErrNotFound
	}

	eggs := in.QuantityTrays * entity.EggsPerTray
	now := time.Now()
	record := &entity.Transaction{
		ID:          uuid.New().String(),
		Kind:        entity.TxKindStockIn,
		HolderID:    actor.UserID,
		TotalAmount: in.CostPerTray.Mul(decimal.NewFromInt(in.QuantityTrays)),
		Date:        now,
		CreatedAt:   now,
		Items: []entity.TransactionItem{{
			EggTypeID:    in.EggTypeID,
			QuantityEggs: eggs,
			UnitPrice:    in.CostPerTray,
		}},
	}
	if in.SupplierName != "" {
		record.SupplierName = &in.SupplierName
	}

	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, txRepo repository.TransactionRepository) error {
		stock, err := stockRepo.GetForUpdate(ctx, actor.UserID, in.EggTypeID)
		if err != nil {
			return err
		}
		if err := stock.ApplyDelta(eggs, 0, 0); err != nil {
			return err
		}
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(ctx, stock); err != nil {
			return err
		}
		return txRepo.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return dto.FromTransaction(record), nil
}

// Transfer traspasa bandejas de huevos buenos del caller a otro holder
// (ISSUE). Ambos deltas y el registro commitean como una sola unidad: nunca
// puede quedar stock debitado del origen sin acreditar en el destino.
// Solo manager/admin.
func (uc *MovementUseCase) Transfer(ctx context.Context, actor Actor, in dto.TransferRequest) (*dto.TransactionResponse, error) {
	if !entity.IsStaff(actor.Role) {
		return nil, domain.ErrForbidden
	}
	if in.QuantityTrays <= 0 {
		return nil, fmt.Errorf("%w: la cantidad de bandejas debe ser positiva", domain.ErrInvalidInput)
	}
	if in.ToUserID == actor.UserID {
		return nil, fmt.Errorf("%w: el destino del traspaso no puede ser el mismo holder", domain.ErrInvalidInput)
	}
	toUser, err := uc.userRepo.GetByID(ctx, in.ToUserID)
	if err != nil {
		return nil, err
	}
	if toUser == nil {
		return nil, domain.ErrNotFound
	}
	eggType, err := uc.eggTypeRepo.GetByID(ctx, in.EggTypeID)
	if err != nil {
		return nil, err
	}
	if eggType == nil {
		return nil, domain.ErrNotFound
	}

	eggs := in.QuantityTrays * entity.EggsPerTray
	now := time.Now()
	record := &entity.Transaction{
		ID:             uuid.New().String(),
		Kind:           entity.TxKindIssue,
		HolderID:       actor.UserID,
		CounterpartyID: &in.ToUserID,
		TotalAmount:    decimal.Zero,
		Date:           now,
		CreatedAt:      now,
		Items: []entity.TransactionItem{{
			EggTypeID:    in.EggTypeID,
			QuantityEggs: eggs,
			UnitPrice:    decimal.Zero, // movimiento interno, sin precio
		}},
	}

	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, txRepo repository.TransactionRepository) error {
		// Bloquear ambos buckets en orden determinista de clave para que dos
		// traspasos cruzados no puedan interbloquearse.
		first, second := actor.UserID, in.ToUserID
		if bucketKey(second, in.EggTypeID) < bucketKey(first, in.EggTypeID) {
			first, second = second, first
		}
		locked := map[string]*entity.Stock{}
		for _, holder := range []string{first, second} {
			s, err := stockRepo.GetForUpdate(ctx, holder, in.EggTypeID)
			if err != nil {
				return err
			}
			locked[holder] = s
		}
		source, dest := locked[actor.UserID], locked[in.ToUserID]

		if err := source.ApplyDelta(-eggs, 0, 0); err != nil {
			return withEggTypeName(err, eggType.Name)
		}
		if err := dest.ApplyDelta(eggs, 0, 0); err != nil {
			return err
		}
		source.UpdatedAt = now
		dest.UpdatedAt = now
		if err := stockRepo.Upsert(ctx, source); err != nil {
			return err
		}
		if err := stockRepo.Upsert(ctx, dest); err != nil {
			return err
		}
		return txRepo.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return dto.FromTransaction(record), nil
}

// ReportDamage mueve huevos buenos a quebrados/podridos en el bucket del
// caller. Invariante de entrada: cracked + spoiled == totalDamaged.
func (uc *MovementUseCase) ReportDamage(ctx context.Context, actor Actor, in dto.DamageRequest) (*dto.TransactionResponse, error) {
	if in.QuantityDamaged <= 0 {
		return nil, fmt.Errorf("%w: el total dañado debe ser positivo", domain.ErrInvalidInput)
	}
	if in.QuantityCracked < 0 || in.QuantitySpoiled < 0 {
		return nil, fmt.Errorf("%w: quebrados y podridos no pueden ser negativos", domain.ErrInvalidInput)
	}
	if in.QuantityCracked+in.QuantitySpoiled != in.QuantityDamaged {
		return nil, fmt.Errorf("%w: la suma de quebrados y podridos debe igualar el total dañado", domain.ErrInvalidInput)
	}
	eggType, err := uc.eggTypeRepo.GetByID(ctx, in.EggTypeID)
	if err != nil {
		return nil, err
	}
	if eggType == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	record := &entity.Transaction{
		ID:          uuid.New().String(),
		Kind:        entity.TxKindDamage,
		HolderID:    actor.UserID,
		TotalAmount: decimal.Zero,
		Date:        now,
		CreatedAt:   now,
		Items: []entity.TransactionItem{{
			EggTypeID:    in.EggTypeID,
			QuantityEggs: in.QuantityDamaged,
			UnitPrice:    decimal.Zero,
		}},
	}

	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, txRepo repository.TransactionRepository) error {
		stock, err := stockRepo.GetForUpdate(ctx, actor.UserID, in.EggTypeID)
		if err != nil {
			return err
		}
		if err := stock.ApplyDelta(-in.QuantityDamaged, in.QuantityCracked, in.QuantitySpoiled); err != nil {
			return withEggTypeName(err, eggType.Name)
		}
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(ctx, stock); err != nil {
			return err
		}
		return txRepo.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return dto.FromTransaction(record), nil
}

// bucketKey clave canónica de un bucket, usada para ordenar los locks.
func bucketKey(holderID, eggTypeID string) string {
	return holderID + "/" + eggTypeID
}

// sortedBucketEggTypes devuelve los tipos de huevo distintos en orden de
// clave de bucket, para bloquear filas siempre en el mismo orden.
func sortedBucketEggTypes(holderID string, eggTypeIDs []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(eggTypeIDs))
	for _, id := range eggTypeIDs {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return bucketKey(holderID, out[i]) < bucketKey(holderID, out[j])
	})
	return out
}

// withEggTypeName completa el nombre del tipo de huevo en errores de stock
// insuficiente, para el mensaje al usuario.
func withEggTypeName(err error, name string) error {
	var insuf *domain.InsufficientStockError
	if errors.As(err, &insuf) {
		insuf.EggTypeName = name
	}
	return err
}
