package costing

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
)

// Fakes en memoria para los puertos de repositorio. Sustituyen PostgreSQL en
// los tests de los casos de uso.

// ── Valoraciones ──────────────────────────────────────────────────────────────

type fakeValuationRepo struct {
	rows []*entity.InventoryValuation
	// failItemID simula una falla de persistencia para un ítem concreto
	// (usado por los tests del sync best-effort).
	failItemID string
}

var errFakePersistence = errors.New("falla simulada de persistencia")

func (f *fakeValuationRepo) List(_ context.Context, asOf *time.Time, method string) ([]*entity.InventoryValuation, error) {
	out := make([]*entity.InventoryValuation, 0)
	for _, v := range f.rows {
		if asOf != nil && v.ValuationDate.After(*asOf) {
			continue
		}
		if method != "" && v.ValuationMethod != method {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeValuationRepo) ListInRange(_ context.Context, from, to time.Time) ([]*entity.InventoryValuation, error) {
	out := make([]*entity.InventoryValuation, 0)
	for _, v := range f.rows {
		if v.ValuationDate.Before(from) || v.ValuationDate.After(to) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeValuationRepo) GetByKey(_ context.Context, itemID string, date time.Time, method string) (*entity.InventoryValuation, error) {
	for _, v := range f.rows {
		if v.ItemID == itemID && v.ValuationDate.Equal(date) && v.ValuationMethod == method {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeValuationRepo) Create(_ context.Context, v *entity.InventoryValuation) error {
	if f.failItemID != "" && v.ItemID == f.failItemID {
		return errFakePersistence
	}
	f.rows = append(f.rows, v)
	return nil
}

func (f *fakeValuationRepo) Update(_ context.Context, v *entity.InventoryValuation) error {
	if f.failItemID != "" && v.ItemID == f.failItemID {
		return errFakePersistence
	}
	for i, existing := range f.rows {
		if existing.ID == v.ID {
			f.rows[i] = v
			return nil
		}
	}
	return nil
}

var _ repository.InventoryValuationRepository = (*fakeValuationRepo)(nil)

// ── Lectores de documentos fuente ─────────────────────────────────────────────

type fakeInvoiceReader struct {
	invoices []*entity.SalesInvoice
}

func (f *fakeInvoiceReader) ListBilledInRange(_ context.Context, from, to time.Time) ([]*entity.SalesInvoice, error) {
	out := make([]*entity.SalesInvoice, 0)
	for _, inv := range f.invoices {
		if inv.Status != entity.InvoiceStatusSent && inv.Status != entity.InvoiceStatusPaid {
			continue
		}
		if inv.InvoiceDate.Before(from) || inv.InvoiceDate.After(to) {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

var _ repository.SalesInvoiceReader = (*fakeInvoiceReader)(nil)

type fakeBillReader struct {
	bills []*entity.PurchaseBill
}

func (f *fakeBillReader) ListApprovedInRange(_ context.Context, from, to time.Time) ([]*entity.PurchaseBill, error) {
	out := make([]*entity.PurchaseBill, 0)
	for _, bill := range f.bills {
		if bill.Status != entity.BillStatusApproved && bill.Status != entity.BillStatusPaid {
			continue
		}
		if bill.BillDate.Before(from) || bill.BillDate.After(to) {
			continue
		}
		out = append(out, bill)
	}
	return out, nil
}

var _ repository.PurchaseBillReader = (*fakeBillReader)(nil)

type fakeAdjustmentReader struct {
	adjustments []*entity.InventoryAdjustment
}

func (f *fakeAdjustmentReader) ListPostedInRange(_ context.Context, from, to time.Time) ([]*entity.InventoryAdjustment, error) {
	out := make([]*entity.InventoryAdjustment, 0)
	for _, adj := range f.adjustments {
		if adj.Status != entity.AdjustmentStatusPosted {
			continue
		}
		if adj.AdjustmentDate.Before(from) || adj.AdjustmentDate.After(to) {
			continue
		}
		out = append(out, adj)
	}
	return out, nil
}

var _ repository.InventoryAdjustmentReader = (*fakeAdjustmentReader)(nil)

// ── Libro de impactos ─────────────────────────────────────────────────────────

type fakeImpactRepo struct {
	rows []*entity.StockImpact
}

func (f *fakeImpactRepo) Create(_ context.Context, impact *entity.StockImpact) error {
	f.rows = append(f.rows, impact)
	return nil
}

func (f *fakeImpactRepo) GetByID(_ context.Context, id string) (*entity.StockImpact, error) {
	for _, impact := range f.rows {
		if impact.ID == id {
			return impact, nil
		}
	}
	return nil, nil
}

func (f *fakeImpactRepo) List(_ context.Context, from, to *time.Time) ([]*entity.StockImpact, error) {
	out := make([]*entity.StockImpact, 0)
	for _, impact := range f.rows {
		if from != nil && impact.TransactionDate.Before(*from) {
			continue
		}
		if to != nil && impact.TransactionDate.After(*to) {
			continue
		}
		out = append(out, impact)
	}
	return out, nil
}

func (f *fakeImpactRepo) Delete(_ context.Context, id string) error {
	for i, impact := range f.rows {
		if impact.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ repository.StockImpactRepository = (*fakeImpactRepo)(nil)

// fakeTxRunner ejecuta el callback directamente contra el repo en memoria.
type fakeTxRunner struct {
	impactRepo *fakeImpactRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.StockImpactRepository) error) error {
	return fn(f.impactRepo)
}

var _ TxRunner = (*fakeTxRunner)(nil)

// ── Registros COGS ────────────────────────────────────────────────────────────

type fakeRecordRepo struct {
	rows []*entity.COGSRecord
}

func (f *fakeRecordRepo) List(_ context.Context, from, to *time.Time) ([]*entity.COGSRecord, error) {
	out := make([]*entity.COGSRecord, 0)
	for _, r := range f.rows {
		if from != nil && r.PeriodEnd.Before(*from) {
			continue
		}
		if to != nil && r.PeriodStart.After(*to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecordRepo) GetByID(_ context.Context, id string) (*entity.COGSRecord, error) {
	for _, r := range f.rows {
		if r.ID == id {
			clone := *r
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) Create(_ context.Context, record *entity.COGSRecord) error {
	f.rows = append(f.rows, record)
	return nil
}

func (f *fakeRecordRepo) Update(_ context.Context, record *entity.COGSRecord) error {
	for i, r := range f.rows {
		if r.ID == record.ID {
			f.rows[i] = record
			return nil
		}
	}
	return nil
}

func (f *fakeRecordRepo) Delete(_ context.Context, id string) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ repository.COGSRecordRepository = (*fakeRecordRepo)(nil)

// ── Constructores de datos de prueba ──────────────────────────────────────────

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
