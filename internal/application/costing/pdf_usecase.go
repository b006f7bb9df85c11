package costing

import (
	"context"
	"fmt"
)

// ValuationPDFUseCase genera la representación PDF del snapshot de valoración
// de inventario a una fecha de corte.
type ValuationPDFUseCase struct {
	engine    *ValuationEngine
	generator ReportPDFGenerator
}

// NewValuationPDFUseCase construye el caso de uso.
func NewValuationPDFUseCase(engine *ValuationEngine, generator ReportPDFGenerator) *ValuationPDFUseCase {
	return &ValuationPDFUseCase{engine: engine, generator: generator}
}

// DownloadValuationPDF calcula el snapshot y lo renderiza a PDF.
// Retorna (pdfBytes, filename, nil) si todo sale bien.
func (uc *ValuationPDFUseCase) DownloadValuationPDF(ctx context.Context, asOfDate, method string) ([]byte, string, error) {
	snapshot, err := uc.engine.Calculate(ctx, asOfDate, method)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateValuationPDF(ctx, snapshot)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("valoracion_%s_%s.pdf", snapshot.ValuationMethod, snapshot.AsOfDate)
	return pdfBytes, filename, nil
}
