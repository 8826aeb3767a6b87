// seed puebla la base con el catálogo inicial de tipos de huevo y los
// usuarios de arranque (admin, manager y un vendedor).
//
// Uso: go run ./cmd/seed
// Idempotente: los registros que ya existen se omiten.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/avicola-api/internal/domain/entity"
	"github.com/jhoicas/avicola-api/internal/infrastructure/postgres"
	"github.com/jhoicas/avicola-api/pkg/config"
)

type seedEggType struct {
	name          string
	trayWholesale string
	unitRetail    string
}

type seedUser struct {
	name     string
	password string
	role     string
}

var eggTypes = []seedEggType{
	{name: "Jumbo", trayWholesale: "450", unitRetail: "20"},
	{name: "Normal", trayWholesale: "420", unitRetail: "18"},
	{name: "Pullets", trayWholesale: "380", unitRetail: "15"},
}

var users = []seedUser{
	{name: "admin", password: "admin12345", role: entity.RoleAdmin},
	{name: "manager", password: "manager12345", role: entity.RoleManager},
	{name: "sales", password: "sales12345", role: entity.RoleSalesPerson},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	eggTypeRepo := postgres.NewEggTypeRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	now := time.Now().UTC()

	for _, s := range eggTypes {
		t := &entity.EggType{
			ID:                 uuid.NewString(),
			Name:               s.name,
			PriceTrayWholesale: decimal.RequireFromString(s.trayWholesale),
			PriceUnitRetail:    decimal.RequireFromString(s.unitRetail),
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := eggTypeRepo.Create(ctx, t); err != nil {
			fmt.Printf("tipo %q omitido: %v\n", s.name, err)
			continue
		}
		fmt.Printf("tipo %q creado (bandeja %s, unidad %s)\n", s.name, s.trayWholesale, s.unitRetail)
	}

	for _, s := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			fail("hash de password: %v", err)
		}
		u := &entity.User{
			ID:           uuid.NewString(),
			Name:         s.name,
			PasswordHash: string(hash),
			Role:         s.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, u); err != nil {
			fmt.Printf("usuario %q omitido: %v\n", s.name, err)
			continue
		}
		fmt.Printf("usuario %q creado (rol %s)\n", s.name, s.role)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
