package costing

import (
	"context"

	"github.com/jhoicas/costeo-api/internal/application/dto"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de impactos atado a esa tx. Garantiza que una corrida del
// calculador de impactos persiste todas sus filas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(impactRepo repository.StockImpactRepository) error) error
}

// ReportPDFGenerator genera la representación PDF del snapshot de valoración.
type ReportPDFGenerator interface {
	GenerateValuationPDF(ctx context.Context, snapshot *dto.ValuationSnapshotResponse) ([]byte, error)
}
