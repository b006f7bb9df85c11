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

func valuation(itemID, name, dateStr, method string, qty, unitCost float64) *entity.InventoryValuation {
	q := decimal.NewFromFloat(qty)
	c := decimal.NewFromFloat(unitCost)
	return &entity.InventoryValuation{
		ID:              itemID + "-" + dateStr,
		ItemID:          itemID,
		ItemName:        name,
		ValuationDate:   date(dateStr),
		ValuationMethod: method,
		Quantity:        q,
		UnitCost:        c,
		TotalValue:      q.Mul(c),
		Currency:        "USD",
	}
}

// Escenario de referencia: dos observaciones de "Widget" bajo promedio
// ponderado -> cantidad 15, costo unitario ~5.667, valor total 85.
func TestValuationEngine_PromedioPonderado(t *testing.T) {
	repo := &fakeValuationRepo{rows: []*entity.InventoryValuation{
		valuation("it-1", "Widget", "2024-01-01", costing.MethodWeightedAverage, 10, 5),
		valuation("it-1", "Widget", "2024-01-15", costing.MethodWeightedAverage, 5, 7),
	}}
	engine := NewValuationEngine(repo)

	snap, err := engine.Calculate(context.Background(), "2024-01-31", "weighted_average")
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)

	item := snap.Items[0]
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(15)), "cantidad: %s", item.Quantity)
	assert.True(t, item.TotalValue.Equal(decimal.NewFromInt(85)), "valor total: %s", item.TotalValue)
	assert.True(t, item.UnitCost.Round(3).Equal(decimal.RequireFromString("5.667")),
		"costo unitario: %s", item.UnitCost)
	assert.True(t, snap.TotalInventoryValue.Equal(decimal.NewFromInt(85)))
}

// El corte de fecha excluye observaciones posteriores a asOfDate.
func TestValuationEngine_CorteDeFecha(t *testing.T) {
	repo := &fakeValuationRepo{rows: []*entity.InventoryValuation{
		valuation("it-1", "Widget", "2024-01-01", costing.MethodWeightedAverage, 10, 5),
		valuation("it-1", "Widget", "2024-02-15", costing.MethodWeightedAverage, 5, 7),
	}}
	engine := NewValuationEngine(repo)

	snap, err := engine.Calculate(context.Background(), "2024-01-31", "weighted_average")
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	assert.True(t, snap.Items[0].Quantity.Equal(decimal.NewFromInt(10)))
	assert.True(t, snap.TotalInventoryValue.Equal(decimal.NewFromInt(50)))
}

// FIFO y LIFO suman el grupo completo en vez de agotar entradas en orden, así
// que hoy producen el mismo total. Este test documenta ese comportamiento: si
// alguien implementa el agotamiento por capas, debe revisar esta decisión de
// compatibilidad de forma consciente.
func TestValuationEngine_FifoYLifoProducenElMismoTotal(t *testing.T) {
	rows := func(method string) []*entity.InventoryValuation {
		return []*entity.InventoryValuation{
			valuation("it-1", "Widget", "2024-01-01", method, 10, 5),
			valuation("it-1", "Widget", "2024-01-15", method, 5, 7),
			valuation("it-2", "Gadget", "2024-01-10", method, 3, 20),
		}
	}
	engineFifo := NewValuationEngine(&fakeValuationRepo{rows: rows(costing.MethodFIFO)})
	engineLifo := NewValuationEngine(&fakeValuationRepo{rows: rows(costing.MethodLIFO)})

	fifo, err := engineFifo.Calculate(context.Background(), "2024-01-31", "fifo")
	require.NoError(t, err)
	lifo, err := engineLifo.Calculate(context.Background(), "2024-01-31", "lifo")
	require.NoError(t, err)

	assert.True(t, fifo.TotalInventoryValue.Equal(lifo.TotalInventoryValue),
		"fifo %s vs lifo %s", fifo.TotalInventoryValue, lifo.TotalInventoryValue)
	require.Len(t, fifo.Items, 2)
	require.Len(t, lifo.Items, 2)
	for i := range fifo.Items {
		assert.True(t, fifo.Items[i].UnitCost.Equal(lifo.Items[i].UnitCost))
		assert.True(t, fifo.Items[i].TotalValue.Equal(lifo.Items[i].TotalValue))
	}
}

// Cantidad neta cero no lanza división por cero: el costo unitario queda en 0.
func TestValuationEngine_CantidadCeroNoDivide(t *testing.T) {
	repo := &fakeValuationRepo{rows: []*entity.InventoryValuation{
		valuation("it-1", "Widget", "2024-01-01", costing.MethodWeightedAverage, 10, 5),
		valuation("it-1", "Widget", "2024-01-15", costing.MethodWeightedAverage, -10, 5),
	}}
	engine := NewValuationEngine(repo)

	snap, err := engine.Calculate(context.Background(), "2024-01-31", "weighted_average")
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	assert.True(t, snap.Items[0].Quantity.IsZero())
	assert.True(t, snap.Items[0].UnitCost.IsZero(), "costo unitario debe ser 0, no error")
}

func TestValuationEngine_FechaInvalida(t *testing.T) {
	engine := NewValuationEngine(&fakeValuationRepo{})
	_, err := engine.Calculate(context.Background(), "31/01/2024", "fifo")
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	_, err = engine.Calculate(context.Background(), "", "fifo")
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestValuationEngine_MetodoInvalido(t *testing.T) {
	engine := NewValuationEngine(&fakeValuationRepo{})
	_, err := engine.Calculate(context.Background(), "2024-01-31", "promedio")
	assert.ErrorIs(t, err, domain.ErrInvalidMethod)
}

// El método se normaliza: mayúsculas y espacios se aceptan.
func TestValuationEngine_MetodoNormalizado(t *testing.T) {
	repo := &fakeValuationRepo{rows: []*entity.InventoryValuation{
		valuation("it-1", "Widget", "2024-01-01", costing.MethodFIFO, 10, 5),
	}}
	engine := NewValuationEngine(repo)

	snap, err := engine.Calculate(context.Background(), "2024-01-31", "  FIFO ")
	require.NoError(t, err)
	assert.Equal(t, "fifo", snap.ValuationMethod)
	require.Len(t, snap.Items, 1)
}

func TestValuationEngine_ListFiltros(t *testing.T) {
	repo := &fakeValuationRepo{rows: []*entity.InventoryValuation{
		valuation("it-1", "Widget", "2024-01-01", costing.MethodFIFO, 10, 5),
		valuation("it-1", "Widget", "2024-03-01", costing.MethodFIFO, 4, 6),
		valuation("it-2", "Gadget", "2024-01-10", costing.MethodWeightedAverage, 3, 20),
	}}
	engine := NewValuationEngine(repo)

	all, err := engine.List(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	fifoOnly, err := engine.List(context.Background(), "", "fifo")
	require.NoError(t, err)
	assert.Len(t, fifoOnly, 2)

	cutoff, err := engine.List(context.Background(), "2024-01-31", "fifo")
	require.NoError(t, err)
	assert.Len(t, cutoff, 1)
}
