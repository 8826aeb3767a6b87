package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrNameAlreadyExists = errors.New("el nombre ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto de concurrencia, reintente la operación")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError indica que falló un chequeo de suficiencia de stock.
// Lleva el tipo de huevo y las cantidades para construir el mensaje al usuario.
// errors.Is(err, ErrInsufficientStock) funciona vía Unwrap.
type InsufficientStockError struct {
	EggTypeID   string
	EggTypeName string
	Requested   int64
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	name := e.EggTypeName
	if name == "" {
		name = e.EggTypeID
	}
	return fmt.Sprintf("stock insuficiente de %s: solicitado %d, disponible %d", name, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
