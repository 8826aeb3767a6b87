package entity

import (
	"time"

	"github.com/jhoicas/avicola-api/internal/domain"
)

// Stock representa el inventario de un tipo de huevo en manos de un holder
// (fila materializada, clave única (holder_id, egg_type_id)).
// Invariante: los tres contadores son >= 0 en todo momento; las operaciones
// que lo violarían se rechazan antes de mutar, nunca se aplica y recorta.
type Stock struct {
	HolderID    string
	EggTypeID   string
	GoodEggs    int64
	CrackedEggs int64
	SpoiledEggs int64
	UpdatedAt   time.Time
}

// ApplyDelta suma deltas con signo a los tres contadores en un solo paso.
// Si algún contador quedaría negativo, no muta nada y devuelve
// *domain.InsufficientStockError con lo solicitado y lo disponible.
func (s *Stock) ApplyDelta(dGood, dCracked, dSpoiled int64) error {
	if s.GoodEggs+dGood < 0 {
		return &domain.InsufficientStockError{EggTypeID: s.EggTypeID, Requested: -dGood, Available: s.GoodEggs}
	}
	if s.CrackedEggs+dCracked < 0 {
		return &domain.InsufficientStockError{EggTypeID: s.EggTypeID, Requested: -dCracked, Available: s.CrackedEggs}
	}
	if s.SpoiledEggs+dSpoiled < 0 {
		return &domain.InsufficientStockError{EggTypeID: s.EggTypeID, Requested: -dSpoiled, Available: s.SpoiledEggs}
	}
	s.GoodEggs += dGood
	s.CrackedEggs += dCracked
	s.SpoiledEggs += dSpoiled
	return nil
}

// SetAbsolute sobreescribe los contadores sin chequeo de suficiencia.
// Solo la reconciliación lo usa; los valores deben venir ya validados >= 0.
func (s *Stock) SetAbsolute(good, cracked, spoiled int64) error {
	if good < 0 || cracked < 0 || spoiled < 0 {
		return domain.ErrInvalidInput
	}
	s.GoodEggs = good
	s.CrackedEggs = cracked
	s.SpoiledEggs = spoiled
	return nil
}
