package repository

import (
	"context"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// InventoryAdjustmentReader puerto de solo lectura hacia los ajustes de
// inventario registrados por el subsistema externo.
type InventoryAdjustmentReader interface {
	// ListPostedInRange devuelve ajustes en estado posted con fecha en [from, to].
	ListPostedInRange(ctx context.Context, from, to time.Time) ([]*entity.InventoryAdjustment, error)
}
