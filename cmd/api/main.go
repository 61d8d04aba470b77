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
	"github.com/joho/godotenv"

	_ "github.com/jhoicas/Inventario-pos/docs"
	"github.com/jhoicas/Inventario-pos/internal/application/analytics"
	"github.com/jhoicas/Inventario-pos/internal/application/backup"
	"github.com/jhoicas/Inventario-pos/internal/application/sales"
	"github.com/jhoicas/Inventario-pos/internal/application/usecase"
	"github.com/jhoicas/Inventario-pos/internal/infrastructure/filestore"
	"github.com/jhoicas/Inventario-pos/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Inventario-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-pos/internal/infrastructure/system"
	httpRouter "github.com/jhoicas/Inventario-pos/internal/interfaces/http"
	"github.com/jhoicas/Inventario-pos/pkg/config"
	"github.com/jhoicas/Inventario-pos/pkg/logger"
)

// @title        Inventario POS API
// @version      1.0
// @description  Inventario, punto de venta y reportes de ventas para un negocio pequeño.
// @BasePath     /
func main() {
	_ = godotenv.Load()

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
		Str("data_dir", cfg.Store.DataDir).
		Msg("iniciando aplicación")

	loc, err := system.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("zona horaria inválida")
	}
	clock := system.NewClock(loc)
	ids := system.UUIDGenerator{}

	blobs, err := filestore.NewOS(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de datos")
	}
	store := memory.NewStore(blobs, log)
	txRunner := memory.NewTxRunner(store)

	productUC := usecase.NewProductUseCase(txRunner, clock, ids, cfg.Ledger.EnforceUniqueOnRename)
	settingsUC := usecase.NewSettingsUseCase(txRunner)
	saleUC := sales.NewSaleUseCase(txRunner, clock, ids, log)
	reportUC := analytics.NewReportUseCase(txRunner, clock)
	dashboardUC := analytics.NewDashboardUseCase(txRunner, clock)
	dataUC := backup.NewDataUseCase(txRunner, store, clock, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:         productUC,
		SettingsUC:        settingsUC,
		SaleUC:            saleUC,
		ReportUC:          reportUC,
		DashboardUC:       dashboardUC,
		DataUC:            dataUC,
		ReportPDF:         infrapdf.NewReportPDFGenerator(cfg.App.Name),
		Clock:             clock,
		Logger:            log,
		SalesHistoryLimit: cfg.Ledger.SalesHistoryLimit,
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
