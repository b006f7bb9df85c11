package dto

import "github.com/shopspring/decimal"

// Los montos y cantidades viajan como decimal.Decimal, que serializa a string
// JSON entre comillas ("30.5"): la frontera nunca pasa por float64. Las
// fechas viajan como YYYY-MM-DD.

// CalculateCogsRequest body para POST /api/cogs/calculate.
// period_start y period_end son obligatorios; item_ids filtra el resultado
// después de agregar (sobre los IDs de ítem resueltos).
type CalculateCogsRequest struct {
	PeriodStart string   `json:"period_start"`
	PeriodEnd   string   `json:"period_end"`
	ItemIDs     []string `json:"item_ids,omitempty"`
}

// CogsItemDTO costo de ventas agregado de un ítem dentro del período.
type CogsItemDTO struct {
	ItemID       string          `json:"item_id,omitempty"`
	ItemCode     string          `json:"item_code,omitempty"`
	ItemName     string          `json:"item_name"`
	QuantitySold decimal.Decimal `json:"quantity_sold"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	TotalCogs    decimal.Decimal `json:"total_cogs"`
}

// CalculateCogsResponse resultado transitorio del cálculo (no se persiste).
type CalculateCogsResponse struct {
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	TotalCogs   decimal.Decimal `json:"total_cogs"`
	Items       []CogsItemDTO   `json:"items"`
}

// CogsReportSummary totales del reporte de rentabilidad.
type CogsReportSummary struct {
	PeriodStart       string          `json:"period_start"`
	PeriodEnd         string          `json:"period_end"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalCogs         decimal.Decimal `json:"total_cogs"`
	GrossProfit       decimal.Decimal `json:"gross_profit"`
	GrossProfitMargin decimal.Decimal `json:"gross_profit_margin"` // %; 0 si revenue es 0
}

// CogsReportItemDTO rentabilidad de un ítem: ingreso, costo, utilidad y margen.
type CogsReportItemDTO struct {
	ItemID       string          `json:"item_id,omitempty"`
	ItemName     string          `json:"item_name"`
	QuantitySold decimal.Decimal `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
	TotalCogs    decimal.Decimal `json:"total_cogs"`
	Profit       decimal.Decimal `json:"profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"` // %; 0 si revenue es 0
}

// CogsReportResponse respuesta de GET /api/cogs/report.
type CogsReportResponse struct {
	Summary CogsReportSummary   `json:"summary"`
	Items   []CogsReportItemDTO `json:"items"`
}

// CreateCogsRequest body para POST /api/cogs (registro manual).
// total_cogs no se acepta: siempre se deriva de quantity_sold * unit_cost.
type CreateCogsRequest struct {
	PeriodStart  string          `json:"period_start"`
	PeriodEnd    string          `json:"period_end"`
	ItemID       string          `json:"item_id"`
	ItemCode     string          `json:"item_code,omitempty"`
	ItemName     string          `json:"item_name,omitempty"`
	QuantitySold decimal.Decimal `json:"quantity_sold"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Currency     string          `json:"currency,omitempty"`
}

// UpdateCogsRequest body para PUT /api/cogs/:id. Campos en nil no cambian.
type UpdateCogsRequest struct {
	PeriodStart  *string          `json:"period_start,omitempty"`
	PeriodEnd    *string          `json:"period_end,omitempty"`
	ItemCode     *string          `json:"item_code,omitempty"`
	ItemName     *string          `json:"item_name,omitempty"`
	QuantitySold *decimal.Decimal `json:"quantity_sold,omitempty"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
	Currency     *string          `json:"currency,omitempty"`
}

// CogsRecordDTO registro COGS persistido, para listados y CRUD.
type CogsRecordDTO struct {
	ID           string          `json:"id"`
	PeriodStart  string          `json:"period_start"`
	PeriodEnd    string          `json:"period_end"`
	ItemID       string          `json:"item_id"`
	ItemCode     string          `json:"item_code,omitempty"`
	ItemName     string          `json:"item_name,omitempty"`
	QuantitySold decimal.Decimal `json:"quantity_sold"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	TotalCogs    decimal.Decimal `json:"total_cogs"`
	Currency     string          `json:"currency,omitempty"`
}

// CalculateValuationRequest body para POST /api/valuations/calculate.
type CalculateValuationRequest struct {
	AsOfDate        string `json:"as_of_date"`
	ValuationMethod string `json:"valuation_method"`
}

// ValuationItemDTO posición valorada de un ítem en el snapshot.
type ValuationItemDTO struct {
	ItemID     string          `json:"item_id"`
	ItemCode   string          `json:"item_code,omitempty"`
	ItemName   string          `json:"item_name,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	TotalValue decimal.Decimal `json:"total_value"`
	Currency   string          `json:"currency,omitempty"`
}

// ValuationSnapshotResponse snapshot de inventario a una fecha de corte.
type ValuationSnapshotResponse struct {
	AsOfDate            string             `json:"as_of_date"`
	ValuationMethod     string             `json:"valuation_method"`
	TotalInventoryValue decimal.Decimal    `json:"total_inventory_value"`
	Items               []ValuationItemDTO `json:"items"`
}

// ValuationDTO fila cruda de inventory_valuations, para listados.
type ValuationDTO struct {
	ID              string          `json:"id"`
	ItemID          string          `json:"item_id"`
	ItemCode        string          `json:"item_code,omitempty"`
	ItemName        string          `json:"item_name,omitempty"`
	ValuationDate   string          `json:"valuation_date"`
	ValuationMethod string          `json:"valuation_method"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	TotalValue      decimal.Decimal `json:"total_value"`
	Currency        string          `json:"currency,omitempty"`
}

// BatchEntryDTO lote externo de entrada para el sync de valoraciones.
type BatchEntryDTO struct {
	ItemID       string          `json:"item_id"`
	ItemCode     string          `json:"item_code,omitempty"`
	ItemName     string          `json:"item_name,omitempty"`
	BatchDate    string          `json:"batch_date"`
	AvailableQty decimal.Decimal `json:"available_qty"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Currency     string          `json:"currency,omitempty"`
}

// SyncValuationsRequest body para POST /api/valuations/sync.
type SyncValuationsRequest struct {
	ValuationMethod string          `json:"valuation_method"`
	Batches         []BatchEntryDTO `json:"batches"`
}

// SyncErrorDTO una entrada de lote que falló durante el sync best-effort.
type SyncErrorDTO struct {
	Index   int    `json:"index"`
	ItemID  string `json:"item_id,omitempty"`
	Message string `json:"message"`
}

// SyncResultDTO resultado del sync: cuántas valoraciones se crearon o
// actualizaron y qué entradas fallaron (las demás sí se aplicaron).
type SyncResultDTO struct {
	Created int            `json:"created"`
	Updated int            `json:"updated"`
	Errors  []SyncErrorDTO `json:"errors"`
}

// CalculateStockImpactsRequest body para POST /api/stock-impacts/calculate.
type CalculateStockImpactsRequest struct {
	PeriodStart string   `json:"period_start"`
	PeriodEnd   string   `json:"period_end"`
	ItemIDs     []string `json:"item_ids,omitempty"`
}

// StockImpactDTO asiento del libro de impactos en respuestas.
type StockImpactDTO struct {
	ID              string          `json:"id"`
	TransactionDate string          `json:"transaction_date"`
	TransactionType string          `json:"transaction_type"`
	ItemID          string          `json:"item_id,omitempty"`
	ItemCode        string          `json:"item_code,omitempty"`
	ItemName        string          `json:"item_name,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	ReferenceID     string          `json:"reference_id,omitempty"`
	ReferenceType   string          `json:"reference_type,omitempty"`
}
