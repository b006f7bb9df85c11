package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción que afectan el inventario.
const (
	TransactionTypePurchase   = "purchase"   // compra (entrada)
	TransactionTypeSale       = "sale"       // venta (salida)
	TransactionTypeAdjustment = "adjustment" // ajuste manual
	TransactionTypeTransfer   = "transfer"   // traslado (definido, nunca generado por el cálculo)
)

// Tipos de referencia hacia el documento origen de un StockImpact.
const (
	ReferenceTypeInvoice    = "sales_invoice"
	ReferenceTypeBill       = "purchase_bill"
	ReferenceTypeAdjustment = "inventory_adjustment"
)

// StockImpact representa un asiento firmado del libro de inventario: cómo una
// transacción cambió la cantidad y el valor en existencia. El libro es
// append-only; las filas nunca se actualizan y solo se eliminan vía el API de
// borrado directo.
//
// Invariantes de signo: sale => Quantity <= 0 y TotalCost <= 0;
// purchase => Quantity >= 0.
type StockImpact struct {
	ID                 string
	OrganizationID     string // opcional, clave de alcance
	TransactionDate    time.Time
	TransactionType    string // purchase, sale, adjustment, transfer
	ItemID             string
	ItemCode           string
	ItemName           string
	Quantity           decimal.Decimal // firmado; negativo = disminución de inventario
	UnitCost           decimal.Decimal
	TotalCost          decimal.Decimal // firmado; = Quantity * UnitCost salvo override explícito
	InventoryAccountID string
	CogsAccountID      string
	ExpenseAccountID   string
	ReferenceID        string // puntero al documento origen (solo lookup, no FK)
	ReferenceType      string
	CreatedAt          time.Time
}
