package costing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/costeo-api/internal/application/dto"
	"github.com/jhoicas/costeo-api/internal/domain"
	"github.com/jhoicas/costeo-api/internal/domain/costing"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

// BatchSyncUseCase traduce lotes de inventario suministrados por sistemas
// externos en observaciones de valoración: la costura hacia los subsistemas
// CRUD excluidos de este núcleo.
type BatchSyncUseCase struct {
	valuationRepo repository.InventoryValuationRepository
}

// NewBatchSyncUseCase construye el caso de uso.
func NewBatchSyncUseCase(valuationRepo repository.InventoryValuationRepository) *BatchSyncUseCase {
	return &BatchSyncUseCase{valuationRepo: valuationRepo}
}

// SyncFromBatches ingesta best-effort: por cada lote con cantidad disponible
// positiva hace upsert de la valoración por (itemID, fecha, método). Una
// entrada que falla se registra en errors[] y el resto del lote continúa; el
// caller decide qué hacer con las fallas. Lotes con cantidad no positiva se
// omiten sin error.
func (uc *BatchSyncUseCase) SyncFromBatches(ctx context.Context, method string, batches []dto.BatchEntryDTO) (*dto.SyncResultDTO, error) {
	m, err := costing.ParseMethod(method)
	if err != nil {
		return nil, err
	}

	result := &dto.SyncResultDTO{Errors: make([]dto.SyncErrorDTO, 0)}
	now := time.Now().UTC()

	for i, batch := range batches {
		if batch.AvailableQty.Sign() <= 0 {
			continue
		}
		if err := uc.applyBatch(ctx, m, batch, now, result); err != nil {
			result.Errors = append(result.Errors, dto.SyncErrorDTO{
				Index:   i,
				ItemID:  batch.ItemID,
				Message: err.Error(),
			})
		}
	}
	return result, nil
}

// applyBatch valida y hace el upsert de una entrada. Cualquier error retorna
// al caller para acumularse en errors[].
func (uc *BatchSyncUseCase) applyBatch(ctx context.Context, method string, batch dto.BatchEntryDTO, now time.Time, result *dto.SyncResultDTO) error {
	if batch.ItemID == "" {
		return domain.ErrInvalidInput
	}
	date, err := costing.ParseDate(batch.BatchDate)
	if err != nil {
		return err
	}
	if batch.UnitCost.Sign() < 0 {
		return domain.ErrInvalidInput
	}
	day := costing.StartOfDay(date)

	existing, err := uc.valuationRepo.GetByKey(ctx, batch.ItemID, day, method)
	if err != nil {
		return err
	}
	totalValue := batch.AvailableQty.Mul(batch.UnitCost)

	if existing != nil {
		existing.Quantity = batch.AvailableQty
		existing.UnitCost = batch.UnitCost
		existing.TotalValue = totalValue
		existing.ItemCode = batch.ItemCode
		existing.ItemName = batch.ItemName
		existing.UpdatedAt = now
		if batch.Currency != "" {
			existing.Currency = batch.Currency
		}
		if err := uc.valuationRepo.Update(ctx, existing); err != nil {
			return err
		}
		result.Updated++
		return nil
	}

	v := &entity.InventoryValuation{
		ID:              uuid.New().String(),
		ItemID:          batch.ItemID,
		ItemCode:        batch.ItemCode,
		ItemName:        batch.ItemName,
		ValuationDate:   day,
		ValuationMethod: method,
		Quantity:        batch.AvailableQty,
		UnitCost:        batch.UnitCost,
		TotalValue:      totalValue,
		Currency:        batch.Currency,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.valuationRepo.Create(ctx, v); err != nil {
		return err
	}
	result.Created++
	return nil
}
