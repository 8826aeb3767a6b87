package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/avicola-api/internal/application/auth"
	"github.com/jhoicas/avicola-api/internal/application/movement"
	"github.com/jhoicas/avicola-api/internal/application/reports"
	"github.com/jhoicas/avicola-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/avicola-api/internal/infrastructure/pdf"
	"github.com/jhoicas/avicola-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/avicola-api/internal/interfaces/http"
	"github.com/jhoicas/avicola-api/pkg/config"
	"github.com/jhoicas/avicola-api/pkg/logger"
)

const swaggerSpecPath = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	eggTypeRepo := postgres.NewEggTypeRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cfg.DB.LockTimeoutMS)

	movementUC := movement.NewMovementUseCase(txRunner, eggTypeRepo, userRepo, customerRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	eggTypeUC := usecase.NewEggTypeUseCase(eggTypeRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	stockQueryUC := usecase.NewStockQueryUseCase(stockRepo, eggTypeRepo)
	salesHistoryUC := usecase.NewSalesHistoryUseCase(txRepo)
	dashboardUC := usecase.NewDashboardUseCase(txRepo, stockRepo)

	// PDF: recibo imprimible de venta
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	receiptUC := reports.NewReceiptUseCase(txRepo, userRepo, customerRepo, eggTypeRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// El middleware paniquea si el archivo no existe (p. ej. binario movido
	// fuera del árbol del repo), así que solo se monta cuando está presente.
	if _, statErr := os.Stat(swaggerSpecPath); statErr == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpecPath,
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Warn().Str("path", swaggerSpecPath).Msg("swagger.json no encontrado, UI de docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		MovementUC:   movementUC,
		StockQueryUC: stockQueryUC,
		SalesHistory: salesHistoryUC,
		ReceiptUC:    receiptUC,
		EggTypeUC:    eggTypeUC,
		CustomerUC:   customerUC,
		UserUC:       userUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
