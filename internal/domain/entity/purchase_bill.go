package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cuenta por pagar de compra. Solo approved y paid generan
// impactos de stock.
const (
	BillStatusDraft    = "draft"
	BillStatusApproved = "approved"
	BillStatusPaid     = "paid"
)

// PurchaseBill cabecera de una factura de compra (solo lectura aquí).
type PurchaseBill struct {
	ID             string
	OrganizationID string
	SupplierID     string
	Number         string
	BillDate       time.Time
	Status         string
	Total          decimal.Decimal
	Currency       string
	Lines          []PurchaseBillLine
}

// PurchaseBillLine línea de compra. Igual que en facturas de venta, solo
// lleva una descripción de texto libre; no se intenta resolver el ítem.
type PurchaseBillLine struct {
	ID          string
	BillID      string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}
