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

// CogsRecordsUseCase CRUD de registros COGS manuales, independiente del
// cálculo transitorio. El invariante totalCogs = quantitySold * unitCost se
// recalcula en cada escritura.
type CogsRecordsUseCase struct {
	recordRepo repository.COGSRecordRepository
}

// NewCogsRecordsUseCase construye el caso de uso.
func NewCogsRecordsUseCase(recordRepo repository.COGSRecordRepository) *CogsRecordsUseCase {
	return &CogsRecordsUseCase{recordRepo: recordRepo}
}

// List devuelve registros COGS; los límites del período son opcionales.
func (uc *CogsRecordsUseCase) List(ctx context.Context, periodStart, periodEnd string) ([]dto.CogsRecordDTO, error) {
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

	records, err := uc.recordRepo.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CogsRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, toCogsRecordDTO(r))
	}
	return out, nil
}

// Create valida el período y el ítem, deriva totalCogs y persiste.
func (uc *CogsRecordsUseCase) Create(ctx context.Context, in dto.CreateCogsRequest) (*dto.CogsRecordDTO, error) {
	period, err := costing.ParsePeriod(in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, err
	}
	if in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantitySold.Sign() < 0 || in.UnitCost.Sign() < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	record := &entity.COGSRecord{
		ID:           uuid.New().String(),
		PeriodStart:  period.Start,
		PeriodEnd:    period.End,
		ItemID:       in.ItemID,
		ItemCode:     in.ItemCode,
		ItemName:     in.ItemName,
		QuantitySold: in.QuantitySold,
		UnitCost:     in.UnitCost,
		Currency:     in.Currency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	record.RecomputeTotal()

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	out := toCogsRecordDTO(record)
	return &out, nil
}

// Update aplica cambios parciales, recalcula totalCogs y persiste.
// Retorna ErrNotFound si el registro no existe.
func (uc *CogsRecordsUseCase) Update(ctx context.Context, id string, in dto.UpdateCogsRequest) (*dto.CogsRecordDTO, error) {
	record, err := uc.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}

	if in.PeriodStart != nil || in.PeriodEnd != nil {
		start := record.PeriodStart.Format(costing.DateLayout)
		end := record.PeriodEnd.Format(costing.DateLayout)
		if in.PeriodStart != nil {
			start = *in.PeriodStart
		}
		if in.PeriodEnd != nil {
			end = *in.PeriodEnd
		}
		period, err := costing.ParsePeriod(start, end)
		if err != nil {
			return nil, err
		}
		record.PeriodStart = period.Start
		record.PeriodEnd = period.End
	}
	if in.ItemCode != nil {
		record.ItemCode = *in.ItemCode
	}
	if in.ItemName != nil {
		record.ItemName = *in.ItemName
	}
	if in.QuantitySold != nil {
		if in.QuantitySold.Sign() < 0 {
			return nil, domain.ErrInvalidInput
		}
		record.QuantitySold = *in.QuantitySold
	}
	if in.UnitCost != nil {
		if in.UnitCost.Sign() < 0 {
			return nil, domain.ErrInvalidInput
		}
		record.UnitCost = *in.UnitCost
	}
	if in.Currency != nil {
		record.Currency = *in.Currency
	}
	record.RecomputeTotal()
	record.UpdatedAt = time.Now().UTC()

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	out := toCogsRecordDTO(record)
	return &out, nil
}

// Delete elimina un registro por ID; ErrNotFound si no existe.
func (uc *CogsRecordsUseCase) Delete(ctx context.Context, id string) error {
	record, err := uc.recordRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrNotFound
	}
	return uc.recordRepo.Delete(ctx, id)
}

func toCogsRecordDTO(r *entity.COGSRecord) dto.CogsRecordDTO {
	return dto.CogsRecordDTO{
		ID:           r.ID,
		PeriodStart:  r.PeriodStart.Format(costing.DateLayout),
		PeriodEnd:    r.PeriodEnd.Format(costing.DateLayout),
		ItemID:       r.ItemID,
		ItemCode:     r.ItemCode,
		ItemName:     r.ItemName,
		QuantitySold: r.QuantitySold,
		UnitCost:     r.UnitCost,
		TotalCogs:    r.TotalCogs,
		Currency:     r.Currency,
	}
}
