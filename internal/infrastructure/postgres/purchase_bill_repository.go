package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

var _ repository.PurchaseBillReader = (*PurchaseBillRepo)(nil)

// PurchaseBillRepo lector de facturas de compra sobre PostgreSQL (solo lectura).
type PurchaseBillRepo struct {
	q Querier
}

// NewPurchaseBillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseBillRepository(q Querier) *PurchaseBillRepo {
	return &PurchaseBillRepo{q: q}
}

// ListApprovedInRange devuelve facturas de compra approved o paid con fecha en
// [from, to], con sus líneas cargadas.
func (r *PurchaseBillRepo) ListApprovedInRange(ctx context.Context, from, to time.Time) ([]*entity.PurchaseBill, error) {
	query := `
		SELECT id, organization_id, supplier_id, number, bill_date, status, total, currency
		FROM purchase_bills
		WHERE status IN ($1, $2) AND bill_date >= $3 AND bill_date <= $4
		ORDER BY bill_date ASC`
	rows, err := r.q.Query(ctx, query, entity.BillStatusApproved, entity.BillStatusPaid, from, to)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	var bills []*entity.PurchaseBill
	byID := make(map[string]*entity.PurchaseBill)
	ids := make([]string, 0)
	for rows.Next() {
		var bill entity.PurchaseBill
		var orgID, supplierID, number, currency *string
		if err := rows.Scan(&bill.ID, &orgID, &supplierID, &number, &bill.BillDate,
			&bill.Status, &bill.Total, &currency); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		bill.OrganizationID = deref(orgID)
		bill.SupplierID = deref(supplierID)
		bill.Number = deref(number)
		bill.Currency = deref(currency)
		bills = append(bills, &bill)
		byID[bill.ID] = &bill
		ids = append(ids, bill.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return bills, nil
	}

	lineQuery := `
		SELECT id, bill_id, description, quantity, unit_price
		FROM purchase_bill_lines
		WHERE bill_id = ANY($1)
		ORDER BY bill_id, id`
	lineRows, err := r.q.Query(ctx, lineQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("list bill lines: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var line entity.PurchaseBillLine
		if err := lineRows.Scan(&line.ID, &line.BillID, &line.Description,
			&line.Quantity, &line.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan bill line: %w", err)
		}
		if bill, ok := byID[line.BillID]; ok {
			bill.Lines = append(bill.Lines, line)
		}
	}
	return bills, lineRows.Err()
}
