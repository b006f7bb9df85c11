package costing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/costeo-api/internal/domain"
	"github.com/jhoicas/costeo-api/internal/domain/costing"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// Escenario de referencia: ingreso 90, COGS 30 -> utilidad 60, margen ~66.7%.
func TestReportAggregator_EscenarioBase(t *testing.T) {
	invoices := &fakeInvoiceReader{invoices: []*entity.SalesInvoice{
		invoice("inv-1", "2024-01-20", entity.InvoiceStatusSent, invLine("Widget", 3, 90)),
	}}
	valuations := &fakeValuationRepo{rows: []*entity.InventoryValuation{
		valuation("it-1", "Widget", "2024-01-10", costing.MethodWeightedAverage, 20, 10),
	}}
	agg := NewReportAggregator(NewCogsCalculator(invoices, valuations, nil))

	report, err := agg.GetReport(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	sum := report.Summary
	assert.True(t, sum.TotalRevenue.Equal(decimal.NewFromInt(90)), "ingreso: %s", sum.TotalRevenue)
	assert.True(t, sum.TotalCogs.Equal(decimal.NewFromInt(30)), "COGS: %s", sum.TotalCogs)
	assert.True(t, sum.GrossProfit.Equal(decimal.NewFromInt(60)), "utilidad: %s", sum.GrossProfit)
	assert.True(t, sum.GrossProfitMargin.Round(1).Equal(decimal.RequireFromString("66.7")),
		"margen: %s", sum.GrossProfitMargin)

	require.Len(t, report.Items, 1)
	item := report.Items[0]
	assert.True(t, item.Revenue.Equal(decimal.NewFromInt(90)))
	assert.True(t, item.Profit.Equal(decimal.NewFromInt(60)))
	assert.True(t, item.ProfitMargin.Round(1).Equal(decimal.RequireFromString("66.7")))
}

// Ingreso cero jamás divide: margen 0 sin importar el COGS.
func TestReportAggregator_IngresoCeroNoDivide(t *testing.T) {
	invoices := &fakeInvoiceReader{invoices: []*entity.SalesInvoice{
		invoice("inv-1", "2024-01-20", entity.InvoiceStatusSent, invLine("Widget", 3, 0)),
	}}
	valuations := &fakeValuationRepo{rows: []*entity.InventoryValuation{
		valuation("it-1", "Widget", "2024-01-10", costing.MethodWeightedAverage, 20, 10),
	}}
	agg := NewReportAggregator(NewCogsCalculator(invoices, valuations, nil))

	report, err := agg.GetReport(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	assert.True(t, report.Summary.TotalRevenue.IsZero())
	assert.True(t, report.Summary.TotalCogs.Equal(decimal.NewFromInt(30)))
	assert.True(t, report.Summary.GrossProfitMargin.IsZero(), "margen debe ser 0 con ingreso 0")
	require.Len(t, report.Items, 1)
	assert.True(t, report.Items[0].ProfitMargin.IsZero())
}

// Sin facturas en la ventana el reporte sale vacío y en ceros.
func TestReportAggregator_PeriodoVacio(t *testing.T) {
	agg := NewReportAggregator(NewCogsCalculator(&fakeInvoiceReader{}, &fakeValuationRepo{}, nil))

	report, err := agg.GetReport(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Empty(t, report.Items)
	assert.True(t, report.Summary.TotalRevenue.IsZero())
	assert.True(t, report.Summary.GrossProfit.IsZero())
	assert.True(t, report.Summary.GrossProfitMargin.IsZero())
}

func TestReportAggregator_PeriodoInvalido(t *testing.T) {
	agg := NewReportAggregator(NewCogsCalculator(&fakeInvoiceReader{}, &fakeValuationRepo{}, nil))
	_, err := agg.GetReport(context.Background(), "2024-03-01", "2024-01-31")
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
