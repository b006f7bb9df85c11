package costing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/costeo-api/internal/application/dto"
	"github.com/jhoicas/costeo-api/internal/domain/costing"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

// StockImpactCalculator sintetiza asientos del libro de impactos a partir de
// las tres fuentes transaccionales: facturas de venta, facturas de compra y
// ajustes de inventario. Es el único cálculo con efectos: persiste las filas
// que genera.
//
// Las filas se agregan incondicionalmente al libro: recalcular sobre una
// ventana que se superpone duplica los asientos (no hay clave de
// idempotencia). Comportamiento heredado del motor de costeo anterior,
// documentado y cubierto por test; la corrección candidata es un upsert por
// (item_id, reference_id, reference_type).
type StockImpactCalculator struct {
	invoiceReader    repository.SalesInvoiceReader
	billReader       repository.PurchaseBillReader
	adjustmentReader repository.InventoryAdjustmentReader
	valuationRepo    repository.InventoryValuationRepository
	txRunner         TxRunner
	newResolver      ResolverFactory
}

// NewStockImpactCalculator construye el calculador. newResolver en nil usa el
// resolvedor por nombre/código.
func NewStockImpactCalculator(
	invoiceReader repository.SalesInvoiceReader,
	billReader repository.PurchaseBillReader,
	adjustmentReader repository.InventoryAdjustmentReader,
	valuationRepo repository.InventoryValuationRepository,
	txRunner TxRunner,
	newResolver ResolverFactory,
) *StockImpactCalculator {
	if newResolver == nil {
		newResolver = func(vals []*entity.InventoryValuation) costing.ItemResolver {
			return costing.NewNameCodeResolver(vals)
		}
	}
	return &StockImpactCalculator{
		invoiceReader:    invoiceReader,
		billReader:       billReader,
		adjustmentReader: adjustmentReader,
		valuationRepo:    valuationRepo,
		txRunner:         txRunner,
		newResolver:      newResolver,
	}
}

// Calculate sintetiza y persiste los impactos del período. Ventas: cantidad y
// costo negativos por cada línea de factura con match de valoración. Compras:
// cantidad y costo positivos por cada línea de factura approved/paid (sin
// resolución de ítem: las líneas solo traen descripción). Ajustes: signo según
// adjustmentType; itemIDs filtra únicamente los ajustes, no las ventas ni las
// compras. Toda la corrida se persiste en una sola transacción.
func (c *StockImpactCalculator) Calculate(ctx context.Context, periodStart, periodEnd string, itemIDs []string) ([]dto.StockImpactDTO, error) {
	period, err := costing.ParsePeriod(periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	valuations, err := c.valuationRepo.ListInRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	resolver := c.newResolver(valuations)
	now := time.Now().UTC()

	impacts := make([]*entity.StockImpact, 0)

	// ── Ventas ──────────────────────────────────────────────────────────────
	invoices, err := c.invoiceReader.ListBilledInRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		for _, line := range inv.Lines {
			lc := resolveLine(resolver, line.Description)
			if !lc.matched {
				continue
			}
			qty := line.Quantity.Neg()
			impacts = append(impacts, &entity.StockImpact{
				ID:              uuid.New().String(),
				OrganizationID:  inv.OrganizationID,
				TransactionDate: inv.InvoiceDate,
				TransactionType: entity.TransactionTypeSale,
				ItemID:          lc.itemID,
				ItemCode:        lc.itemCode,
				ItemName:        lc.itemName,
				Quantity:        qty,
				UnitCost:        lc.unitCost,
				TotalCost:       qty.Mul(lc.unitCost),
				ReferenceID:     inv.ID,
				ReferenceType:   entity.ReferenceTypeInvoice,
				CreatedAt:       now,
			})
		}
	}

	// ── Compras ─────────────────────────────────────────────────────────────
	bills, err := c.billReader.ListApprovedInRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	for _, bill := range bills {
		for _, line := range bill.Lines {
			impacts = append(impacts, &entity.StockImpact{
				ID:              uuid.New().String(),
				OrganizationID:  bill.OrganizationID,
				TransactionDate: bill.BillDate,
				TransactionType: entity.TransactionTypePurchase,
				ItemName:        line.Description,
				Quantity:        line.Quantity,
				UnitCost:        line.UnitPrice,
				TotalCost:       line.Quantity.Mul(line.UnitPrice),
				ReferenceID:     bill.ID,
				ReferenceType:   entity.ReferenceTypeBill,
				CreatedAt:       now,
			})
		}
	}

	// ── Ajustes ─────────────────────────────────────────────────────────────
	adjustments, err := c.adjustmentReader.ListPostedInRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	var filter map[string]bool
	if len(itemIDs) > 0 {
		filter = make(map[string]bool, len(itemIDs))
		for _, id := range itemIDs {
			filter[id] = true
		}
	}
	for _, adj := range adjustments {
		if filter != nil && !filter[adj.ItemID] {
			continue
		}
		qty := adjustmentQuantity(adj)
		impacts = append(impacts, &entity.StockImpact{
			ID:              uuid.New().String(),
			OrganizationID:  adj.OrganizationID,
			TransactionDate: adj.AdjustmentDate,
			TransactionType: entity.TransactionTypeAdjustment,
			ItemID:          adj.ItemID,
			ItemCode:        adj.ItemCode,
			ItemName:        adj.ItemName,
			Quantity:        qty,
			UnitCost:        adj.UnitCost,
			TotalCost:       qty.Mul(adj.UnitCost),
			ReferenceID:     adj.ID,
			ReferenceType:   entity.ReferenceTypeAdjustment,
			CreatedAt:       now,
		})
	}

	err = c.txRunner.Run(ctx, func(impactRepo repository.StockImpactRepository) error {
		for _, impact := range impacts {
			if err := impactRepo.Create(ctx, impact); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.StockImpactDTO, 0, len(impacts))
	for _, impact := range impacts {
		out = append(out, toStockImpactDTO(impact))
	}
	return out, nil
}

// adjustmentQuantity devuelve la cantidad firmada de un ajuste: write_up (o
// un "other" con cantidad positiva) aumenta el inventario; cualquier otro
// caso lo disminuye.
func adjustmentQuantity(adj *entity.InventoryAdjustment) decimal.Decimal {
	increases := adj.AdjustmentType == entity.AdjustmentTypeWriteUp ||
		(adj.AdjustmentType == entity.AdjustmentTypeOther && adj.Quantity.Sign() > 0)
	magnitude := adj.Quantity.Abs()
	if increases {
		return magnitude
	}
	return magnitude.Neg()
}

// toStockImpactDTO convierte el asiento a su representación de frontera.
func toStockImpactDTO(impact *entity.StockImpact) dto.StockImpactDTO {
	return dto.StockImpactDTO{
		ID:              impact.ID,
		TransactionDate: impact.TransactionDate.Format(costing.DateLayout),
		TransactionType: impact.TransactionType,
		ItemID:          impact.ItemID,
		ItemCode:        impact.ItemCode,
		ItemName:        impact.ItemName,
		Quantity:        impact.Quantity,
		UnitCost:        impact.UnitCost,
		TotalCost:       impact.TotalCost,
		ReferenceID:     impact.ReferenceID,
		ReferenceType:   impact.ReferenceType,
	}
}
