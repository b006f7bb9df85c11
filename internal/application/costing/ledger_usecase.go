package costing

import (
	"context"
	"time"

	"github.com/jhoicas/costeo-api/internal/application/dto"
	"github.com/jhoicas/costeo-api/internal/domain"
	"github.com/jhoicas/costeo-api/internal/domain/costing"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

// StockLedgerUseCase lecturas y borrado directo sobre el libro de impactos.
// El libro no expone actualización: los asientos son inmutables una vez
// escritos por el calculador.
type StockLedgerUseCase struct {
	impactRepo repository.StockImpactRepository
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(impactRepo repository.StockImpactRepository) *StockLedgerUseCase {
	return &StockLedgerUseCase{impactRepo: impactRepo}
}

// List devuelve los asientos del libro; ambos límites de período son
// opcionales e independientes.
func (uc *StockLedgerUseCase) List(ctx context.Context, periodStart, periodEnd string) ([]dto.StockImpactDTO, error) {
	var from, to *time.Time
	if periodStart != "" {
		d, err := costing.ParseDate(periodStart)
		if err != nil {
			return nil, err
		}
		s := costing.StartOfDay(d)
		from = &s
	}
	if periodEnd != "" {
		d, err := costing.ParseDate(periodEnd)
		if err != nil {
			return nil, err
		}
		e := costing.EndOfDay(d)
		to = &e
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, domain.ErrInvalidPeriod
	}

	impacts, err := uc.impactRepo.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockImpactDTO, 0, len(impacts))
	for _, impact := range impacts {
		out = append(out, toStockImpactDTO(impact))
	}
	return out, nil
}

// Delete elimina un asiento por ID (API de borrado directo, el único camino
// de salida de un asiento del libro).
func (uc *StockLedgerUseCase) Delete(ctx context.Context, id string) error {
	impact, err := uc.impactRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if impact == nil {
		return domain.ErrNotFound
	}
	return uc.impactRepo.Delete(ctx, id)
}
