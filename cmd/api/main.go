// @title          StockWatch API
// @version        1.0
// @description    API de inventario con alertas de stock bajo por empresa.
// @host           localhost:8080
// @BasePath       /
// @securityDefinitions.apikey Bearer
// @in             header
// @name           Authorization
// @description    Bearer <token>
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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	_ "github.com/jhoicas/stockwatch-api/docs"
	"github.com/jhoicas/stockwatch-api/internal/application/alerts"
	"github.com/jhoicas/stockwatch-api/internal/application/inventory"
	infrapdf "github.com/jhoicas/stockwatch-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockwatch-api/internal/interfaces/http"
	"github.com/jhoicas/stockwatch-api/pkg/config"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("alerts_default_threshold", cfg.Alerts.DefaultThreshold).
		Int("alerts_lookback_days", cfg.Alerts.LookbackDays).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	changeRepo := postgres.NewInventoryChangeRepository(pool)
	lowStockRepo := postgres.NewLowStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	createProductUC := inventory.NewCreateProductUseCase(txRunner, productRepo, warehouseRepo)
	registerChangeUC := inventory.NewRegisterChangeUseCase(txRunner, productRepo, warehouseRepo)

	policy := alerts.Policy{
		DefaultThreshold: cfg.Alerts.DefaultThreshold,
		LookbackDays:     cfg.Alerts.LookbackDays,
	}
	lowStockUC := alerts.NewLowStockUseCase(lowStockRepo, changeRepo, policy)
	reportUC := alerts.NewReportUseCase(lowStockUC, infrapdf.NewLowStockReportGenerator())

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: rutas /api sin autenticación")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "StockWatch API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LowStock:       lowStockUC,
		Report:         reportUC,
		CreateProduct:  createProductUC,
		RegisterChange: registerChangeUC,
		Logger:         log,
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
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
