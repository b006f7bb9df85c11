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

func invoice(id, dateStr, status string, lines ...entity.SalesInvoiceLine) *entity.SalesInvoice {
	return &entity.SalesInvoice{
		ID:          id,
		InvoiceDate: date(dateStr),
		Status:      status,
		Lines:       lines,
	}
}

func invLine(description string, qty, amount float64) entity.SalesInvoiceLine {
	return entity.SalesInvoiceLine{
		Description: description,
		Quantity:    decimal.NewFromFloat(qty),
		Amount:      decimal.NewFromFloat(amount),
	}
}

// Escenario de referencia: una factura SENT con línea "Widget" x3 y una
// valoración de "Widget" a costo 10 -> cantidad vendida 3, COGS 30.
func TestCogsCalculator_EscenarioBase(t *testing.T) {
	invoices := &fakeInvoiceReader{invoices: []*entity.SalesInvoice{
		invoice("inv-1", "2024-01-20", entity.InvoiceStatusSent, invLine("Widget", 3, 90)),
	}}
	valuations := &fakeValuationRepo{rows: []*entity.InventoryValuation{
		valuation("it-1", "Widget", "2024-01-10", costing.MethodWeightedAverage, 20, 10),
	}}
	calc := NewCogsCalculator(invoices, valuations, nil)

	res, err := calc.Calculate(context.Background(), "2024-01-01", "2024-01-31", nil)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)

	item := res.Items[0]
	assert.Equal(t, "it-1", item.ItemID)
	assert.True(t, item.QuantitySold.Equal(decimal.NewFromInt(3)), "cantidad vendida: %s", item.QuantitySold)
	assert.True(t, item.TotalCogs.Equal(decimal.NewFromInt(30)), "COGS: %s", item.TotalCogs)
	assert.True(t, res.TotalCogs.Equal(decimal.NewFromInt(30)))
}

// Solo participan facturas SENT o PAID; DRAFT y VOID se ignoran.
func TestCogsCalculator_SoloFacturasEmitidasOPagadas(t *testing.T) {
	invoices := &fakeInvoiceReader{invoices: []*entity.SalesInvoice{
		invoice("inv-1", "2024-01-20", entity.InvoiceStatusSent, invLine("Widget", 3, 90)),
		invoice("inv-2", "2024-01-21", entity.InvoiceStatusPaid, invLine("Widget", 2, 60)),
		invoice("inv-3", "2024-01-22", entity.InvoiceStatusDraft, invLine("Widget", 100, 3000)),
		invoice("inv-4", "2024-01-23", entity.InvoiceStatusVoid, invLine("Widget", 50, 1500)),
	}}
	valuations := &fakeValuationRepo{rows: []*entity.InventoryValuation{
		valuation("it-1", "Widget", "2024-01-10", costing.MethodWeightedAverage, 20, 10),
	}}
	calc := NewCogsCalculator(invoices, valuations, nil)

	res, err := calc.Calculate(context.Background(), "2024-01-01", "2024-01-31", nil)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.True(t, res.Items[0].QuantitySold.Equal(decimal.NewFromInt(5)))
	assert.True(t, res.TotalCogs.Equal(decimal.NewFromInt(50)))
}

// Una línea sin match de valoración costea a cero pero sí agrega cantidad.
func TestCogsCalculator_LineaSinMatchCosteaCero(t *testing.T) {
	invoices := &fakeInvoiceReader{invoices: []*entity.SalesInvoice{
		invoice("inv-1", "2024-01-20", entity.InvoiceStatusSent,
			invLine("Widget", 3, 90),
			invLine("Servicio de instalación", 1, 50)),
	}}
	valuations := &fakeValuationRepo{rows: []*entity.InventoryValuation{
		valuation("it-1", "Widget", "2024-01-10", costing.MethodWeightedAverage, 20, 10),
	}}
	calc := NewCogsCalculator(invoices, valuations, nil)

	res, err := calc.Calculate(context.Background(), "2024-01-01", "2024-01-31", nil)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.True(t, res.TotalCogs.Equal(decimal.NewFromInt(30)), "la línea sin match no aporta costo")

	var unmatched bool
	for _, item := range res.Items {
		if item.ItemID == "" {
			unmatched = true
			assert.Equal(t, "Servicio de instalación", item.ItemName)
			assert.True(t, item.TotalCogs.IsZero())
		}
	}
	assert.True(t, unmatched, "la línea sin match debe aparecer en el resultado")
}

// El filtro itemIDs se aplica después de agregar, sobre los IDs resueltos.
func TestCogsCalculator_FiltroItemIDsPosterior(t *testing.T) {
	invoices := &fakeInvoiceReader{invoices: []*entity.SalesInvoice{
		invoice("inv-1", "2024-01-20", entity.InvoiceStatusSent,
			invLine("Widget", 3, 90),
			invLine("Gadget", 2, 100)),
	}}
	valuations := &fakeValuationRepo{rows: []*entity.InventoryValuation{
		valuation("it-1", "Widget", "2024-01-10", costing.MethodWeightedAverage, 20, 10),
		valuation("it-2", "Gadget", "2024-01-10", costing.MethodWeightedAverage, 5, 25),
	}}
	calc := NewCogsCalculator(invoices, valuations, nil)

	res, err := calc.Calculate(context.Background(), "2024-01-01", "2024-01-31", []string{"it-2"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "it-2", res.Items[0].ItemID)
	assert.True(t, res.TotalCogs.Equal(decimal.NewFromInt(50)), "solo el ítem filtrado suma al total")
}

// Validación temprana del período: límites obligatorios, parseables y ordenados.
func TestCogsCalculator_PeriodoInvalido(t *testing.T) {
	calc := NewCogsCalculator(&fakeInvoiceReader{}, &fakeValuationRepo{}, nil)
	ctx := context.Background()

	_, err := calc.Calculate(ctx, "", "2024-01-31", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod, "period_start faltante")

	_, err = calc.Calculate(ctx, "2024-01-01", "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod, "period_end faltante")

	_, err = calc.Calculate(ctx, "01-01-2024", "2024-01-31", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod, "fecha no parseable")

	_, err = calc.Calculate(ctx, "2024-02-01", "2024-01-31", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod, "inicio posterior al fin")
}

// Las facturas del día límite cuentan: la ventana va de inicio a fin de día.
func TestCogsCalculator_VentanaIncluyeDiaLimite(t *testing.T) {
	invoices := &fakeInvoiceReader{invoices: []*entity.SalesInvoice{
		invoice("inv-1", "2024-01-31", entity.InvoiceStatusSent, invLine("Widget", 1, 30)),
	}}
	valuations := &fakeValuationRepo{rows: []*entity.InventoryValuation{
		valuation("it-1", "Widget", "2024-01-31", costing.MethodWeightedAverage, 10, 10),
	}}
	calc := NewCogsCalculator(invoices, valuations, nil)

	res, err := calc.Calculate(context.Background(), "2024-01-01", "2024-01-31", nil)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.True(t, res.TotalCogs.Equal(decimal.NewFromInt(10)))
}
