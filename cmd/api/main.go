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

	appcosting "github.com/jhoicas/costeo-api/internal/application/costing"
	infrapdf "github.com/jhoicas/costeo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/costeo-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/costeo-api/internal/interfaces/http"
	"github.com/jhoicas/costeo-api/pkg/config"
	"github.com/jhoicas/costeo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	valuationRepo := postgres.NewInventoryValuationRepository(pool)
	recordRepo := postgres.NewCogsRecordRepository(pool)
	impactRepo := postgres.NewStockImpactRepository(pool)
	invoiceReader := postgres.NewSalesInvoiceRepository(pool)
	billReader := postgres.NewPurchaseBillRepository(pool)
	adjustmentReader := postgres.NewInventoryAdjustmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	cogsCalculator := appcosting.NewCogsCalculator(invoiceReader, valuationRepo, nil)
	reportAgg := appcosting.NewReportAggregator(cogsCalculator)
	cogsRecords := appcosting.NewCogsRecordsUseCase(recordRepo)
	valuationEngine := appcosting.NewValuationEngine(valuationRepo)
	batchSync := appcosting.NewBatchSyncUseCase(valuationRepo)
	impactCalc := appcosting.NewStockImpactCalculator(
		invoiceReader, billReader, adjustmentReader, valuationRepo, txRunner, nil,
	)
	stockLedger := appcosting.NewStockLedgerUseCase(impactRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	valuationPDF := appcosting.NewValuationPDFUseCase(valuationEngine, pdfGenerator)

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
		Title:    "Costeo API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CogsCalculator:  cogsCalculator,
		ReportAgg:       reportAgg,
		CogsRecords:     cogsRecords,
		ValuationEngine: valuationEngine,
		BatchSync:       batchSync,
		ValuationPDF:    valuationPDF,
		ImpactCalc:      impactCalc,
		StockLedger:     stockLedger,
		JWTSecret:       cfg.JWT.Secret,
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
