package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryValuation representa una observación de costeo: cantidad y costo
// unitario de un ítem observados en una fecha bajo un método de valoración.
// Clave de upsert: (ItemID, ValuationDate, ValuationMethod).
type InventoryValuation struct {
	ID              string
	OrganizationID  string
	ItemID          string
	ItemCode        string
	ItemName        string
	ValuationDate   time.Time
	ValuationMethod string          // fifo, lifo, weighted_average, specific_identification
	Quantity        decimal.Decimal
	UnitCost        decimal.Decimal
	TotalValue      decimal.Decimal // debe ser igual a Quantity * UnitCost
	Currency        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
