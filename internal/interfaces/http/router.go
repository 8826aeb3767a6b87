package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/avicola-api/internal/application/auth"
	"github.com/jhoicas/avicola-api/internal/application/movement"
	"github.com/jhoicas/avicola-api/internal/application/reports"
	"github.com/jhoicas/avicola-api/internal/application/usecase"
	"github.com/jhoicas/avicola-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	MovementUC   *movement.MovementUseCase
	StockQueryUC *usecase.StockQueryUseCase
	SalesHistory *usecase.SalesHistoryUseCase
	ReceiptUC    *reports.ReceiptUseCase
	EggTypeUC    *usecase.EggTypeUseCase
	CustomerUC   *usecase.CustomerUseCase
	UserUC       *usecase.UserUseCase
	DashboardUC  *usecase.DashboardUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	staffOnly := RequireRole(entity.RoleAdmin, entity.RoleManager)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario y movimientos
	inventoryHandler := NewInventoryHandler(deps.MovementUC, deps.StockQueryUC)
	invGroup := protected.Group("/inventory")
	invGroup.Get("/", inventoryHandler.GetInventory)
	invGroup.Post("/", staffOnly, inventoryHandler.StockIn)
	invGroup.Post("/transfer", staffOnly, inventoryHandler.Transfer)
	invGroup.Post("/damages", inventoryHandler.ReportDamage)

	// Ventas
	salesHandler := NewSalesHandler(deps.MovementUC, deps.SalesHistory, deps.ReceiptUC)
	sales := protected.Group("/sales")
	sales.Post("/", salesHandler.Create)
	sales.Get("/", salesHandler.History)
	sales.Get("/:id/receipt", salesHandler.Receipt)

	// Arqueo (solo staff)
	reconciliationHandler := NewReconciliationHandler(deps.MovementUC)
	protected.Post("/reconciliation", staffOnly, reconciliationHandler.Reconcile)

	// Catálogo de tipos de huevo
	eggTypeHandler := NewEggTypeHandler(deps.EggTypeUC)
	eggTypes := protected.Group("/egg-types")
	eggTypes.Get("/", eggTypeHandler.List)
	eggTypes.Post("/", adminOnly, eggTypeHandler.Create)
	eggTypes.Put("/:id/prices", adminOnly, eggTypeHandler.UpdatePrices)

	// Clientes
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Usuarios
	userHandler := NewUserHandler(deps.AuthUC, deps.UserUC)
	users := protected.Group("/users")
	users.Get("/", staffOnly, userHandler.List)
	users.Post("/", adminOnly, userHandler.Create)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)
}
