package repository

import (
	"context"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// InventoryValuationRepository define el puerto de persistencia para las
// observaciones de valoración. Lectura intensiva: el motor de valoración y el
// cálculo de COGS agregan sobre estos registros.
type InventoryValuationRepository interface {
	// List devuelve valoraciones filtradas. asOf en nil omite el corte de
	// fecha; method vacío omite el filtro de método.
	List(ctx context.Context, asOf *time.Time, method string) ([]*entity.InventoryValuation, error)
	// ListInRange devuelve valoraciones con fecha dentro de [from, to],
	// cualquier método. Alimenta el lookup de costos del cálculo de COGS.
	ListInRange(ctx context.Context, from, to time.Time) ([]*entity.InventoryValuation, error)
	// GetByKey busca por la clave de upsert (itemID, fecha, método).
	// Retorna nil, nil si no existe.
	GetByKey(ctx context.Context, itemID string, date time.Time, method string) (*entity.InventoryValuation, error)
	Create(ctx context.Context, v *entity.InventoryValuation) error
	Update(ctx context.Context, v *entity.InventoryValuation) error
}
