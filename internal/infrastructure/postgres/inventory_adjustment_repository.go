package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

var _ repository.InventoryAdjustmentReader = (*InventoryAdjustmentRepo)(nil)

// InventoryAdjustmentRepo lector de ajustes de inventario sobre PostgreSQL
// (solo lectura).
type InventoryAdjustmentRepo struct {
	q Querier
}

// NewInventoryAdjustmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryAdjustmentRepository(q Querier) *InventoryAdjustmentRepo {
	return &InventoryAdjustmentRepo{q: q}
}

// ListPostedInRange devuelve ajustes posted con fecha en [from, to].
func (r *InventoryAdjustmentRepo) ListPostedInRange(ctx context.Context, from, to time.Time) ([]*entity.InventoryAdjustment, error) {
	query := `
		SELECT id, organization_id, item_id, item_code, item_name, adjustment_date,
			adjustment_type, status, quantity, unit_cost, reason
		FROM inventory_adjustments
		WHERE status = $1 AND adjustment_date >= $2 AND adjustment_date <= $3
		ORDER BY adjustment_date ASC`
	rows, err := r.q.Query(ctx, query, entity.AdjustmentStatusPosted, from, to)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryAdjustment
	for rows.Next() {
		var adj entity.InventoryAdjustment
		var orgID, itemCode, itemName, reason *string
		if err := rows.Scan(&adj.ID, &orgID, &adj.ItemID, &itemCode, &itemName,
			&adj.AdjustmentDate, &adj.AdjustmentType, &adj.Status,
			&adj.Quantity, &adj.UnitCost, &reason); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		adj.OrganizationID = deref(orgID)
		adj.ItemCode = deref(itemCode)
		adj.ItemName = deref(itemName)
		adj.Reason = deref(reason)
		list = append(list, &adj)
	}
	return list, rows.Err()
}
