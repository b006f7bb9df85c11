package costing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/costeo-api/internal/application/dto"
	"github.com/jhoicas/costeo-api/internal/domain/costing"
)

var oneHundred = decimal.NewFromInt(100)

// ReportAggregator combina el COGS calculado con el ingreso facturado para
// producir utilidad bruta y margen, por ítem y en agregado.
type ReportAggregator struct {
	calc *CogsCalculator
}

// NewReportAggregator construye el agregador sobre el calculador de COGS.
func NewReportAggregator(calc *CogsCalculator) *ReportAggregator {
	return &ReportAggregator{calc: calc}
}

// GetReport re-invoca el cálculo de COGS del período y suma el monto de las
// líneas de factura por la misma clave de ítem resuelta para obtener el
// ingreso. profit = revenue - totalCogs; profitMargin = profit/revenue*100
// con guarda a 0 cuando el ingreso es 0 (nunca divide por cero).
func (a *ReportAggregator) GetReport(ctx context.Context, periodStart, periodEnd string) (*dto.CogsReportResponse, error) {
	cogs, err := a.calc.Calculate(ctx, periodStart, periodEnd, nil)
	if err != nil {
		return nil, err
	}

	period, err := costing.ParsePeriod(periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	invoices, err := a.calc.invoiceReader.ListBilledInRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	valuations, err := a.calc.valuationRepo.ListInRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	resolver := a.calc.newResolver(valuations)

	// Ingreso por clave de ítem resuelta (misma clave que usó el cálculo).
	revenue := make(map[string]decimal.Decimal)
	for _, inv := range invoices {
		for _, line := range inv.Lines {
			key := resolveLine(resolver, line.Description).aggKey()
			revenue[key] = revenue[key].Add(line.Amount)
		}
	}

	resp := &dto.CogsReportResponse{
		Summary: dto.CogsReportSummary{
			PeriodStart:       cogs.PeriodStart,
			PeriodEnd:         cogs.PeriodEnd,
			TotalRevenue:      decimal.Zero,
			TotalCogs:         cogs.TotalCogs,
			GrossProfit:       decimal.Zero,
			GrossProfitMargin: decimal.Zero,
		},
		Items: make([]dto.CogsReportItemDTO, 0, len(cogs.Items)),
	}
	for _, it := range cogs.Items {
		lc := lineCost{itemID: it.ItemID, itemName: it.ItemName}
		rev := revenue[lc.aggKey()]
		profit := rev.Sub(it.TotalCogs)
		margin := decimal.Zero
		if !rev.IsZero() {
			margin = profit.Div(rev).Mul(oneHundred)
		}
		resp.Items = append(resp.Items, dto.CogsReportItemDTO{
			ItemID:       it.ItemID,
			ItemName:     it.ItemName,
			QuantitySold: it.QuantitySold,
			Revenue:      rev,
			TotalCogs:    it.TotalCogs,
			Profit:       profit,
			ProfitMargin: margin,
		})
		resp.Summary.TotalRevenue = resp.Summary.TotalRevenue.Add(rev)
	}

	resp.Summary.GrossProfit = resp.Summary.TotalRevenue.Sub(resp.Summary.TotalCogs)
	if !resp.Summary.TotalRevenue.IsZero() {
		resp.Summary.GrossProfitMargin = resp.Summary.GrossProfit.
			Div(resp.Summary.TotalRevenue).Mul(oneHundred)
	}
	return resp, nil
}
