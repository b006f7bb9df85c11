package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

var _ repository.COGSRecordRepository = (*CogsRecordRepo)(nil)

// CogsRecordRepo persistencia de registros COGS sobre PostgreSQL (usable con
// pool o tx).
type CogsRecordRepo struct {
	q Querier
}

// NewCogsRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCogsRecordRepository(q Querier) *CogsRecordRepo {
	return &CogsRecordRepo{q: q}
}

const cogsRecordColumns = `id, organization_id, period_start, period_end, item_id, item_code, item_name,
	quantity_sold, unit_cost, total_cogs, currency, created_at, updated_at`

// List lista registros cuyo período intersecta [from, to]; con límites en nil
// lista todos.
func (r *CogsRecordRepo) List(ctx context.Context, from, to *time.Time) ([]*entity.COGSRecord, error) {
	query := `SELECT ` + cogsRecordColumns + ` FROM cogs_records WHERE 1=1`
	args := []any{}
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND period_end >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND period_start <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += " ORDER BY period_start ASC, item_id ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cogs records: %w", err)
	}
	defer rows.Close()

	var list []*entity.COGSRecord
	for rows.Next() {
		record, err := scanCogsRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cogs record: %w", err)
		}
		list = append(list, record)
	}
	return list, rows.Err()
}

// GetByID obtiene un registro por ID. Retorna nil, nil si no existe.
func (r *CogsRecordRepo) GetByID(ctx context.Context, id string) (*entity.COGSRecord, error) {
	query := `SELECT ` + cogsRecordColumns + ` FROM cogs_records WHERE id = $1`
	record, err := scanCogsRecord(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cogs record: %w", err)
	}
	return record, nil
}

// Create persiste un registro nuevo.
func (r *CogsRecordRepo) Create(ctx context.Context, record *entity.COGSRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	query := `
		INSERT INTO cogs_records (` + cogsRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		record.ID, nullable(record.OrganizationID), record.PeriodStart, record.PeriodEnd,
		record.ItemID, nullable(record.ItemCode), nullable(record.ItemName),
		record.QuantitySold, record.UnitCost, record.TotalCogs,
		nullable(record.Currency), record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create cogs record: %w", err)
	}
	return nil
}

// Update actualiza un registro existente por ID.
func (r *CogsRecordRepo) Update(ctx context.Context, record *entity.COGSRecord) error {
	query := `
		UPDATE cogs_records
		SET period_start = $2, period_end = $3, item_code = $4, item_name = $5,
			quantity_sold = $6, unit_cost = $7, total_cogs = $8, currency = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		record.ID, record.PeriodStart, record.PeriodEnd,
		nullable(record.ItemCode), nullable(record.ItemName),
		record.QuantitySold, record.UnitCost, record.TotalCogs,
		nullable(record.Currency), record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cogs record: %w", err)
	}
	return nil
}

// Delete elimina un registro por ID.
func (r *CogsRecordRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM cogs_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cogs record: %w", err)
	}
	return nil
}

func scanCogsRecord(row pgx.Row) (*entity.COGSRecord, error) {
	var record entity.COGSRecord
	var orgID, itemCode, itemName, currency *string
	err := row.Scan(
		&record.ID, &orgID, &record.PeriodStart, &record.PeriodEnd,
		&record.ItemID, &itemCode, &itemName,
		&record.QuantitySold, &record.UnitCost, &record.TotalCogs,
		&currency, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.OrganizationID = deref(orgID)
	record.ItemCode = deref(itemCode)
	record.ItemName = deref(itemName)
	record.Currency = deref(currency)
	return &record, nil
}
