package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/avicola-api/internal/domain"
	"github.com/jhoicas/avicola-api/internal/domain/entity"
	"github.com/jhoicas/avicola-api/internal/domain/repository"
)

// ReceiptLine línea de recibo ya resuelta (nombre del tipo y subtotal).
type ReceiptLine struct {
	EggTypeName  string
	QuantityEggs int64
	UnitPrice    decimal.Decimal
	Subtotal     decimal.Decimal
}

// ReceiptPDFGenerator puerto del generador de PDF del recibo de venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Transaction, seller *entity.User, customer *entity.Customer, lines []ReceiptLine) ([]byte, error)
}

// ReceiptUseCase genera el recibo imprimible de una venta.
type ReceiptUseCase struct {
	txRepo       repository.TransactionRepository
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
	eggTypeRepo  repository.EggTypeRepository
	generator    ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	txRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	eggTypeRepo repository.EggTypeRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		txRepo:       txRepo,
		userRepo:     userRepo,
		customerRepo: customerRepo,
		eggTypeRepo:  eggTypeRepo,
		generator:    generator,
	}
}

// GenerateSaleReceipt genera el PDF del recibo de una venta. El vendedor solo
// puede emitir recibos de sus propias ventas; manager/admin de cualquiera.
func (uc *ReceiptUseCase) GenerateSaleReceipt(ctx context.Context, callerID, callerRole, saleID string) ([]byte, error) {
	sale, err := uc.txRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil || sale.Kind != entity.TxKindSale {
		return nil, domain.ErrNotFound
	}
	if sale.HolderID != callerID && !entity.IsStaff(callerRole) {
		return nil, domain.ErrForbidden
	}

	seller, err := uc.userRepo.GetByID(ctx, sale.HolderID)
	if err != nil {
		return nil, err
	}

	var customer *entity.Customer
	if sale.CounterpartyID != nil {
		customer, err = uc.customerRepo.GetByID(ctx, *sale.CounterpartyID)
		if err != nil {
			return nil, err
		}
	}

	names := map[string]string{}
	if types, err := uc.eggTypeRepo.List(ctx); err == nil {
		for _, t := range types {
			names[t.ID] = t.Name
		}
	}
	lines := make([]ReceiptLine, 0, len(sale.Items))
	for _, it := range sale.Items {
		name := names[it.EggTypeID]
		if name == "" {
			name = it.EggTypeID
		}
		lines = append(lines, ReceiptLine{
			EggTypeName:  name,
			QuantityEggs: it.QuantityEggs,
			UnitPrice:    it.UnitPrice,
			Subtotal:     it.UnitPrice.Mul(decimal.NewFromInt(it.QuantityEggs)),
		})
	}

	return uc.generator.GenerateReceiptPDF(ctx, sale, seller, customer, lines)
}
