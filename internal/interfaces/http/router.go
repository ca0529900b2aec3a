package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockwatch-api/internal/application/alerts"
	"github.com/jhoicas/stockwatch-api/internal/application/inventory"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LowStock       *alerts.LowStockUseCase
	Report         *alerts.ReportUseCase
	CreateProduct  *inventory.CreateProductUseCase
	RegisterChange *inventory.RegisterChangeUseCase
	Logger         *logger.Logger
	JWTSecret      string // vacío = rutas sin autenticación
	JWTIssuer      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	}

	productHandler := NewProductHandler(deps.CreateProduct, log)
	api.Post("/products", productHandler.Create)

	inventoryHandler := NewInventoryHandler(deps.RegisterChange, log)
	api.Post("/inventory/changes", inventoryHandler.RegisterChange)

	// Alertas por empresa
	alertHandler := NewAlertHandler(deps.LowStock, deps.Report, log)
	sameCompany := RequireCompanyParam("company_id")
	companyAlerts := api.Group("/companies/:company_id/alerts")
	companyAlerts.Get("/low-stock", sameCompany, alertHandler.GetLowStockAlerts)
	if deps.Report != nil {
		companyAlerts.Get("/low-stock/report.pdf", sameCompany, alertHandler.DownloadLowStockPDF)
	}
}
