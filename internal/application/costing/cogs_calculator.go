package costing

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/costeo-api/internal/application/dto"
	"github.com/jhoicas/costeo-api/internal/domain/costing"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

// ResolverFactory construye el resolvedor débil de ítems a partir de las
// valoraciones de la ventana. Sustituible en tests y en despliegues que
// quieran otra estrategia de matching.
type ResolverFactory func(valuations []*entity.InventoryValuation) costing.ItemResolver

// CogsCalculator calcula el costo de ventas de un período cruzando las líneas
// de factura (cantidades vendidas) contra las valoraciones de inventario
// (base de costo). No persiste nada: recalcula en cada invocación.
type CogsCalculator struct {
	invoiceReader repository.SalesInvoiceReader
	valuationRepo repository.InventoryValuationRepository
	newResolver   ResolverFactory
}

// NewCogsCalculator construye el calculador. newResolver en nil usa el
// resolvedor por nombre/código del dominio.
func NewCogsCalculator(
	invoiceReader repository.SalesInvoiceReader,
	valuationRepo repository.InventoryValuationRepository,
	newResolver ResolverFactory,
) *CogsCalculator {
	if newResolver == nil {
		newResolver = func(vals []*entity.InventoryValuation) costing.ItemResolver {
			return costing.NewNameCodeResolver(vals)
		}
	}
	return &CogsCalculator{
		invoiceReader: invoiceReader,
		valuationRepo: valuationRepo,
		newResolver:   newResolver,
	}
}

// lineCost resultado de resolver la descripción de una línea contra las
// valoraciones: ítem identificado (si hubo match) y su costo unitario.
type lineCost struct {
	itemID   string
	itemCode string
	itemName string
	unitCost decimal.Decimal
	matched  bool
}

// resolveLine aplica el resolvedor a la descripción. Sin match la línea
// costea a cero y conserva la descripción cruda como nombre.
func resolveLine(resolver costing.ItemResolver, description string) lineCost {
	if v := resolver.Resolve(description); v != nil {
		return lineCost{
			itemID:   v.ItemID,
			itemCode: v.ItemCode,
			itemName: v.ItemName,
			unitCost: v.UnitCost,
			matched:  true,
		}
	}
	return lineCost{itemName: strings.TrimSpace(description), unitCost: decimal.Zero}
}

// aggKey clave de agregación: el ID del ítem resuelto, o la descripción
// normalizada cuando no hubo match.
func (lc lineCost) aggKey() string {
	if lc.itemID != "" {
		return lc.itemID
	}
	return "desc:" + costing.NormalizeKey(lc.itemName)
}

// Calculate valida el período de forma temprana, carga facturas SENT/PAID y
// valoraciones de la ventana, resuelve cada línea por nombre/código y agrega
// cantidad vendida y COGS por ítem. El filtro itemIDs se aplica DESPUÉS de
// agregar, sobre los IDs resueltos.
func (c *CogsCalculator) Calculate(ctx context.Context, periodStart, periodEnd string, itemIDs []string) (*dto.CalculateCogsResponse, error) {
	period, err := costing.ParsePeriod(periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	invoices, err := c.invoiceReader.ListBilledInRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	valuations, err := c.valuationRepo.ListInRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	resolver := c.newResolver(valuations)

	items := make(map[string]*dto.CogsItemDTO)
	order := make([]string, 0)
	for _, inv := range invoices {
		for _, line := range inv.Lines {
			lc := resolveLine(resolver, line.Description)
			key := lc.aggKey()
			agg, ok := items[key]
			if !ok {
				agg = &dto.CogsItemDTO{
					ItemID:       lc.itemID,
					ItemCode:     lc.itemCode,
					ItemName:     lc.itemName,
					QuantitySold: decimal.Zero,
					UnitCost:     lc.unitCost,
					TotalCogs:    decimal.Zero,
				}
				items[key] = agg
				order = append(order, key)
			}
			agg.QuantitySold = agg.QuantitySold.Add(line.Quantity)
			agg.TotalCogs = agg.TotalCogs.Add(line.Quantity.Mul(lc.unitCost))
		}
	}

	var filter map[string]bool
	if len(itemIDs) > 0 {
		filter = make(map[string]bool, len(itemIDs))
		for _, id := range itemIDs {
			filter[id] = true
		}
	}

	sort.Strings(order)
	resp := &dto.CalculateCogsResponse{
		PeriodStart: period.Start.Format(costing.DateLayout),
		PeriodEnd:   period.End.Format(costing.DateLayout),
		TotalCogs:   decimal.Zero,
		Items:       make([]dto.CogsItemDTO, 0, len(order)),
	}
	for _, key := range order {
		agg := items[key]
		if filter != nil && !filter[agg.ItemID] {
			continue
		}
		resp.Items = append(resp.Items, *agg)
		resp.TotalCogs = resp.TotalCogs.Add(agg.TotalCogs)
	}
	return resp, nil
}
