package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// COGSRecord representa el costo de ventas calculado (o ingresado manualmente)
// para un ítem dentro de un período.
type COGSRecord struct {
	ID             string
	OrganizationID string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	ItemID         string
	ItemCode       string
	ItemName       string
	QuantitySold   decimal.Decimal
	UnitCost       decimal.Decimal
	TotalCogs      decimal.Decimal // = QuantitySold * UnitCost, recalculado tras cada cambio
	Currency       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RecomputeTotal recalcula TotalCogs a partir de QuantitySold y UnitCost.
// Debe invocarse después de modificar cualquiera de los dos campos.
func (r *COGSRecord) RecomputeTotal() {
	r.TotalCogs = r.QuantitySold.Mul(r.UnitCost)
}
