package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/costeo-api/internal/domain"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

var _ repository.InventoryValuationRepository = (*InventoryValuationRepo)(nil)

// InventoryValuationRepo persistencia de observaciones de valoración sobre
// PostgreSQL (usable con pool o tx).
type InventoryValuationRepo struct {
	q Querier
}

// NewInventoryValuationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryValuationRepository(q Querier) *InventoryValuationRepo {
	return &InventoryValuationRepo{q: q}
}

const valuationColumns = `id, organization_id, item_id, item_code, item_name, valuation_date,
	valuation_method, quantity, unit_cost, total_value, currency, created_at, updated_at`

// List lista valoraciones; asOf en nil omite el corte de fecha y method vacío
// omite el filtro de método.
func (r *InventoryValuationRepo) List(ctx context.Context, asOf *time.Time, method string) ([]*entity.InventoryValuation, error) {
	query := `SELECT ` + valuationColumns + ` FROM inventory_valuations WHERE 1=1`
	args := []any{}
	pos := 1
	if asOf != nil {
		query += fmt.Sprintf(" AND valuation_date <= $%d", pos)
		args = append(args, *asOf)
		pos++
	}
	if method != "" {
		query += fmt.Sprintf(" AND valuation_method = $%d", pos)
		args = append(args, method)
		pos++
	}
	query += " ORDER BY item_id ASC, valuation_date ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list valuations: %w", err)
	}
	defer rows.Close()
	return collectValuations(rows)
}

// ListInRange lista valoraciones con fecha dentro de [from, to], cualquier método.
func (r *InventoryValuationRepo) ListInRange(ctx context.Context, from, to time.Time) ([]*entity.InventoryValuation, error) {
	query := `SELECT ` + valuationColumns + `
		FROM inventory_valuations
		WHERE valuation_date >= $1 AND valuation_date <= $2
		ORDER BY item_id ASC, valuation_date ASC`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list valuations in range: %w", err)
	}
	defer rows.Close()
	return collectValuations(rows)
}

// GetByKey busca por la clave de upsert (itemID, fecha, método).
// Retorna nil, nil si no existe.
func (r *InventoryValuationRepo) GetByKey(ctx context.Context, itemID string, date time.Time, method string) (*entity.InventoryValuation, error) {
	query := `SELECT ` + valuationColumns + `
		FROM inventory_valuations
		WHERE item_id = $1 AND valuation_date = $2 AND valuation_method = $3`
	v, err := scanValuation(r.q.QueryRow(ctx, query, itemID, date, method))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get valuation by key: %w", err)
	}
	return v, nil
}

// Create persiste una observación nueva. Una carrera sobre la clave de upsert
// se reporta como ErrDuplicate.
func (r *InventoryValuationRepo) Create(ctx context.Context, v *entity.InventoryValuation) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_valuations (` + valuationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		v.ID, nullable(v.OrganizationID), v.ItemID, nullable(v.ItemCode), nullable(v.ItemName),
		v.ValuationDate, v.ValuationMethod, v.Quantity, v.UnitCost, v.TotalValue,
		nullable(v.Currency), v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("valuation (%s, %s, %s): %w",
				v.ItemID, v.ValuationDate.Format("2006-01-02"), v.ValuationMethod, domain.ErrDuplicate)
		}
		return fmt.Errorf("create valuation: %w", err)
	}
	return nil
}

// Update actualiza una observación existente por ID.
func (r *InventoryValuationRepo) Update(ctx context.Context, v *entity.InventoryValuation) error {
	query := `
		UPDATE inventory_valuations
		SET item_code = $2, item_name = $3, quantity = $4, unit_cost = $5,
			total_value = $6, currency = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		v.ID, nullable(v.ItemCode), nullable(v.ItemName),
		v.Quantity, v.UnitCost, v.TotalValue, nullable(v.Currency), v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update valuation: %w", err)
	}
	return nil
}

func collectValuations(rows pgx.Rows) ([]*entity.InventoryValuation, error) {
	var list []*entity.InventoryValuation
	for rows.Next() {
		v, err := scanValuation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan valuation: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func scanValuation(row pgx.Row) (*entity.InventoryValuation, error) {
	var v entity.InventoryValuation
	var orgID, itemCode, itemName, currency *string
	err := row.Scan(
		&v.ID, &orgID, &v.ItemID, &itemCode, &itemName, &v.ValuationDate,
		&v.ValuationMethod, &v.Quantity, &v.UnitCost, &v.TotalValue,
		&currency, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.OrganizationID = deref(orgID)
	v.ItemCode = deref(itemCode)
	v.ItemName = deref(itemName)
	v.Currency = deref(currency)
	return &v, nil
}
