package entity_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/avicola-api/internal/domain"
	"github.com/jhoicas/avicola-api/internal/domain/entity"
)

// ApplyDelta con saldo suficiente debe mutar los tres contadores.
func TestStock_ApplyDelta_Suficiente(t *testing.T) {
	s := &entity.Stock{HolderID: "h1", EggTypeID: "e1", GoodEggs: 100, CrackedEggs: 5, SpoiledEggs: 2}

	require.NoError(t, s.ApplyDelta(-10, 4, 6))

	assert.Equal(t, int64(90), s.GoodEggs)
	assert.Equal(t, int64(9), s.CrackedEggs)
	assert.Equal(t, int64(8), s.SpoiledEggs)
}

// ApplyDelta que dejaría un contador negativo no debe mutar nada.
func TestStock_ApplyDelta_Insuficiente_NoMuta(t *testing.T) {
	s := &entity.Stock{HolderID: "h1", EggTypeID: "e1", GoodEggs: 30}

	err := s.ApplyDelta(-31, 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock), "debe mapear a ErrInsufficientStock")

	var insuf *domain.InsufficientStockError
	require.True(t, errors.As(err, &insuf))
	assert.Equal(t, int64(31), insuf.Requested)
	assert.Equal(t, int64(30), insuf.Available)

	// El bucket queda intacto
	assert.Equal(t, int64(30), s.GoodEggs)
	assert.Equal(t, int64(0), s.CrackedEggs)
	assert.Equal(t, int64(0), s.SpoiledEggs)
}

// El chequeo aplica también a quebrados y podridos, no solo a buenos.
func TestStock_ApplyDelta_ContadoresSecundarios(t *testing.T) {
	s := &entity.Stock{GoodEggs: 10, CrackedEggs: 1, SpoiledEggs: 0}

	err := s.ApplyDelta(0, -2, 0)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, int64(1), s.CrackedEggs)

	err = s.ApplyDelta(0, 0, -1)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
}

// SetAbsolute sobreescribe sin chequeo de suficiencia pero rechaza negativos.
func TestStock_SetAbsolute(t *testing.T) {
	s := &entity.Stock{GoodEggs: 5}

	require.NoError(t, s.SetAbsolute(120, 3, 1))
	assert.Equal(t, int64(120), s.GoodEggs)
	assert.Equal(t, int64(3), s.CrackedEggs)
	assert.Equal(t, int64(1), s.SpoiledEggs)

	assert.ErrorIs(t, s.SetAbsolute(-1, 0, 0), domain.ErrInvalidInput)
	assert.Equal(t, int64(120), s.GoodEggs, "un SetAbsolute rechazado no debe mutar")
}

// El precio mayorista por huevo es bandeja/30 exacto (420/30 = 14).
func TestEggType_WholesaleUnitPrice(t *testing.T) {
	et := &entity.EggType{Name: "Normal", PriceTrayWholesale: decimal.NewFromInt(420)}

	assert.True(t, et.WholesaleUnitPrice().Equal(decimal.NewFromInt(14)))
}
