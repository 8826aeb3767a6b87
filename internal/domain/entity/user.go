package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "ADMIN"
	RoleManager     = "MANAGER"
	RoleSalesPerson = "SALES_PERSON"
)

// IsStaff indica si el rol puede operar stock ajeno (manager o admin).
func IsStaff(role string) bool {
	return role == RoleAdmin || role == RoleManager
}

// User representa un miembro del personal: cada usuario es un holder con su
// propio bucket de stock por tipo de huevo.
type User struct {
	ID           string
	Name         string // único; el login es por nombre
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Role         string // ADMIN, MANAGER, SALES_PERSON
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
