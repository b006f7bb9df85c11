package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura de venta. Solo SENT y PAID participan en los
// cálculos de COGS e impacto de stock.
const (
	InvoiceStatusDraft = "DRAFT"
	InvoiceStatusSent  = "SENT"
	InvoiceStatusPaid  = "PAID"
	InvoiceStatusVoid  = "VOID"
)

// SalesInvoice cabecera de una factura de venta. Este repositorio solo la lee:
// el subsistema de facturación externo es el dueño del registro.
type SalesInvoice struct {
	ID             string
	OrganizationID string
	CustomerID     string
	Number         string
	InvoiceDate    time.Time
	Status         string
	SubTotal       decimal.Decimal
	TaxTotal       decimal.Decimal
	GrandTotal     decimal.Decimal
	Currency       string
	Lines          []SalesInvoiceLine
}

// SalesInvoiceLine línea de factura. No hay FK hacia ítems de inventario:
// Description es texto libre y se resuelve por coincidencia de nombre/código.
type SalesInvoiceLine struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}
