package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ajuste de inventario. write_up (o un "other" con cantidad
// positiva) aumenta el inventario; cualquier otro caso lo disminuye.
const (
	AdjustmentTypeWriteUp   = "write_up"
	AdjustmentTypeWriteDown = "write_down"
	AdjustmentTypeOther     = "other"
)

// Estados de un ajuste. Solo los posted participan en el cálculo.
const (
	AdjustmentStatusDraft  = "draft"
	AdjustmentStatusPosted = "posted"
)

// InventoryAdjustment un ajuste manual de inventario (solo lectura aquí).
// A diferencia de las líneas de factura, el ajuste sí referencia el ítem por ID.
type InventoryAdjustment struct {
	ID             string
	OrganizationID string
	ItemID         string
	ItemCode       string
	ItemName       string
	AdjustmentDate time.Time
	AdjustmentType string // write_up, write_down, other
	Status         string // draft, posted
	Quantity       decimal.Decimal // magnitud; el signo lo decide AdjustmentType
	UnitCost       decimal.Decimal
	Reason         string
}
