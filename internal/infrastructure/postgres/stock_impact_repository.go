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

var _ repository.StockImpactRepository = (*StockImpactRepo)(nil)

// StockImpactRepo persistencia del libro de impactos sobre PostgreSQL
// (usable con pool o tx).
type StockImpactRepo struct {
	q Querier
}

// NewStockImpactRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockImpactRepository(q Querier) *StockImpactRepo {
	return &StockImpactRepo{q: q}
}

const stockImpactColumns = `id, organization_id, transaction_date, transaction_type, item_id, item_code, item_name,
	quantity, unit_cost, total_cost, inventory_account_id, cogs_account_id, expense_account_id,
	reference_id, reference_type, created_at`

// Create persiste un asiento del libro.
func (r *StockImpactRepo) Create(ctx context.Context, impact *entity.StockImpact) error {
	if impact.ID == "" {
		impact.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_impacts (` + stockImpactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		impact.ID, nullable(impact.OrganizationID), impact.TransactionDate, impact.TransactionType,
		nullable(impact.ItemID), nullable(impact.ItemCode), impact.ItemName,
		impact.Quantity, impact.UnitCost, impact.TotalCost,
		nullable(impact.InventoryAccountID), nullable(impact.CogsAccountID), nullable(impact.ExpenseAccountID),
		nullable(impact.ReferenceID), nullable(impact.ReferenceType), impact.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock impact: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID. Retorna nil, nil si no existe.
func (r *StockImpactRepo) GetByID(ctx context.Context, id string) (*entity.StockImpact, error) {
	query := `SELECT ` + stockImpactColumns + ` FROM stock_impacts WHERE id = $1`
	impact, err := scanStockImpact(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock impact: %w", err)
	}
	return impact, nil
}

// List lista asientos con fecha de transacción dentro de [from, to]; los
// límites en nil se omiten.
func (r *StockImpactRepo) List(ctx context.Context, from, to *time.Time) ([]*entity.StockImpact, error) {
	query := `SELECT ` + stockImpactColumns + ` FROM stock_impacts WHERE 1=1`
	args := []any{}
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND transaction_date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND transaction_date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += " ORDER BY transaction_date ASC, created_at ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock impacts: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockImpact
	for rows.Next() {
		impact, err := scanStockImpact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock impact: %w", err)
		}
		list = append(list, impact)
	}
	return list, rows.Err()
}

// Delete elimina un asiento por ID.
func (r *StockImpactRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stock_impacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock impact: %w", err)
	}
	return nil
}

func scanStockImpact(row pgx.Row) (*entity.StockImpact, error) {
	var impact entity.StockImpact
	var orgID, itemID, itemCode, invAcct, cogsAcct, expAcct, refID, refType *string
	err := row.Scan(
		&impact.ID, &orgID, &impact.TransactionDate, &impact.TransactionType,
		&itemID, &itemCode, &impact.ItemName,
		&impact.Quantity, &impact.UnitCost, &impact.TotalCost,
		&invAcct, &cogsAcct, &expAcct,
		&refID, &refType, &impact.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	impact.OrganizationID = deref(orgID)
	impact.ItemID = deref(itemID)
	impact.ItemCode = deref(itemCode)
	impact.InventoryAccountID = deref(invAcct)
	impact.CogsAccountID = deref(cogsAcct)
	impact.ExpenseAccountID = deref(expAcct)
	impact.ReferenceID = deref(refID)
	impact.ReferenceType = deref(refType)
	return &impact, nil
}
