package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-pos/internal/application/analytics"
	"github.com/jhoicas/Inventario-pos/internal/application/backup"
	"github.com/jhoicas/Inventario-pos/internal/application/ports"
	"github.com/jhoicas/Inventario-pos/internal/application/sales"
	"github.com/jhoicas/Inventario-pos/internal/application/usecase"
	"github.com/jhoicas/Inventario-pos/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC         *usecase.ProductUseCase
	SettingsUC        *usecase.SettingsUseCase
	SaleUC            *sales.SaleUseCase
	ReportUC          *analytics.ReportUseCase
	DashboardUC       *analytics.DashboardUseCase
	DataUC            *backup.DataUseCase
	ReportPDF         reportRenderer
	Clock             ports.Clock
	Logger            *logger.Logger
	SalesHistoryLimit int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")

	api := app.Group("/api", RequestLogger(log))

	// Products. Las rutas fijas van antes de /:id
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/categories", productHandler.Categories)
	products.Get("/sellable", productHandler.Sellable)
	products.Get("/alerts", productHandler.Alerts)
	products.Post("/bulk-delete", productHandler.BulkDelete)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales (punto de venta)
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, log, deps.SalesHistoryLimit)
	salesGroup.Post("/preview", saleHandler.Preview)
	salesGroup.Post("/", saleHandler.Commit)
	salesGroup.Get("/", saleHandler.History)
	salesGroup.Get("/today", saleHandler.Today)
	salesGroup.Delete("/:id", saleHandler.Reverse)

	// Reports (?format=json|csv|pdf)
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportPDF, deps.Clock, log)
	reports.Get("/daily", reportHandler.Daily)
	reports.Get("/weekly", reportHandler.Weekly)
	reports.Get("/monthly", reportHandler.Monthly)
	reports.Get("/range", reportHandler.Range)
	reports.Get("/today/share", reportHandler.ShareToday)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/top-products", dashboardHandler.GetTopProducts)
	dashboard.Get("/categories", dashboardHandler.GetCategoryPerformance)

	// Settings
	settingsHandler := NewSettingsHandler(deps.SettingsUC, log)
	api.Get("/settings", settingsHandler.Get)
	api.Put("/settings", settingsHandler.Update)

	// Exportaciones, respaldo y borrado total
	dataHandler := NewDataHandler(deps.DataUC, deps.ProductUC, deps.SaleUC, deps.Clock, log)
	api.Get("/export/inventory.csv", dataHandler.ExportInventory)
	api.Get("/export/sales.csv", dataHandler.ExportSales)
	api.Get("/backup", dataHandler.Backup)
	api.Post("/backup/restore", dataHandler.Restore)
	api.Post("/data/clear", dataHandler.ClearAll)
}
