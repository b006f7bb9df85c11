package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

var _ repository.SalesInvoiceReader = (*SalesInvoiceRepo)(nil)

// SalesInvoiceRepo lector de facturas de venta sobre PostgreSQL. Solo lectura:
// el subsistema de facturación es el dueño de estas tablas.
type SalesInvoiceRepo struct {
	q Querier
}

// NewSalesInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesInvoiceRepository(q Querier) *SalesInvoiceRepo {
	return &SalesInvoiceRepo{q: q}
}

// ListBilledInRange devuelve facturas SENT o PAID con fecha en [from, to], con
// sus líneas cargadas. Dos consultas: cabeceras y luego líneas por ANY(ids).
func (r *SalesInvoiceRepo) ListBilledInRange(ctx context.Context, from, to time.Time) ([]*entity.SalesInvoice, error) {
	query := `
		SELECT id, organization_id, customer_id, number, invoice_date, status,
			sub_total, tax_total, grand_total, currency
		FROM sales_invoices
		WHERE status IN ($1, $2) AND invoice_date >= $3 AND invoice_date <= $4
		ORDER BY invoice_date ASC`
	rows, err := r.q.Query(ctx, query, entity.InvoiceStatusSent, entity.InvoiceStatusPaid, from, to)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*entity.SalesInvoice
	byID := make(map[string]*entity.SalesInvoice)
	ids := make([]string, 0)
	for rows.Next() {
		var inv entity.SalesInvoice
		var orgID, customerID, number, currency *string
		if err := rows.Scan(&inv.ID, &orgID, &customerID, &number, &inv.InvoiceDate, &inv.Status,
			&inv.SubTotal, &inv.TaxTotal, &inv.GrandTotal, &currency); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		inv.OrganizationID = deref(orgID)
		inv.CustomerID = deref(customerID)
		inv.Number = deref(number)
		inv.Currency = deref(currency)
		invoices = append(invoices, &inv)
		byID[inv.ID] = &inv
		ids = append(ids, inv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return invoices, nil
	}

	lineQuery := `
		SELECT id, invoice_id, description, quantity, unit_price, amount
		FROM sales_invoice_lines
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, id`
	lineRows, err := r.q.Query(ctx, lineQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var line entity.SalesInvoiceLine
		if err := lineRows.Scan(&line.ID, &line.InvoiceID, &line.Description,
			&line.Quantity, &line.UnitPrice, &line.Amount); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		if inv, ok := byID[line.InvoiceID]; ok {
			inv.Lines = append(inv.Lines, line)
		}
	}
	return invoices, lineRows.Err()
}
