package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/costeo-api/internal/application/costing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CogsCalculator  *costing.CogsCalculator
	ReportAgg       *costing.ReportAggregator
	CogsRecords     *costing.CogsRecordsUseCase
	ValuationEngine *costing.ValuationEngine
	BatchSync       *costing.BatchSyncUseCase
	ValuationPDF    *costing.ValuationPDFUseCase
	ImpactCalc      *costing.StockImpactCalculator
	StockLedger     *costing.StockLedgerUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Health (público)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// COGS: cálculo transitorio, reporte y CRUD de registros (protegido)
	cogs := protected.Group("/cogs")
	cogsHandler := NewCogsHandler(deps.CogsCalculator, deps.ReportAgg, deps.CogsRecords)
	cogs.Post("/calculate", cogsHandler.Calculate)
	cogs.Get("/report", cogsHandler.GetReport)
	cogs.Get("/", cogsHandler.List)
	cogs.Post("/", RequireRole("admin", "contador"), cogsHandler.Create)
	cogs.Put("/:id", RequireRole("admin", "contador"), cogsHandler.Update)
	cogs.Delete("/:id", RequireRole("admin", "contador"), cogsHandler.Delete)

	// Valoraciones: snapshot, listado, sync de lotes y PDF (protegido)
	valuations := protected.Group("/valuations")
	valuationHandler := NewValuationHandler(deps.ValuationEngine, deps.BatchSync, deps.ValuationPDF)
	valuations.Get("/report.pdf", valuationHandler.DownloadPDF)
	valuations.Post("/calculate", valuationHandler.Calculate)
	valuations.Post("/sync", RequireRole("admin", "contador"), valuationHandler.Sync)
	valuations.Get("/", valuationHandler.List)

	// Libro de impactos de stock (protegido)
	impacts := protected.Group("/stock-impacts")
	impactHandler := NewStockImpactHandler(deps.ImpactCalc, deps.StockLedger)
	impacts.Post("/calculate", RequireRole("admin", "contador"), impactHandler.Calculate)
	impacts.Get("/", impactHandler.List)
	impacts.Delete("/:id", RequireRole("admin"), impactHandler.Delete)
}
