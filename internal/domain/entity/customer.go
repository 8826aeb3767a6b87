package entity

import "time"

// Customer representa un cliente de ventas a crédito o mayoristas frecuentes.
type Customer struct {
	ID          string
	Name        string
	PhoneNumber string
	CreatedAt   time.Time
}
