package costing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/costeo-api/internal/application/dto"
	"github.com/jhoicas/costeo-api/internal/domain"
)

func createReq(itemID string, qty, unitCost float64) dto.CreateCogsRequest {
	return dto.CreateCogsRequest{
		PeriodStart:  "2024-01-01",
		PeriodEnd:    "2024-01-31",
		ItemID:       itemID,
		ItemName:     "Widget",
		QuantitySold: decimal.NewFromFloat(qty),
		UnitCost:     decimal.NewFromFloat(unitCost),
		Currency:     "USD",
	}
}

// total_cogs siempre se deriva en el servidor, nunca se acepta del cliente.
func TestCogsRecords_CreateDerivaTotal(t *testing.T) {
	repo := &fakeRecordRepo{}
	uc := NewCogsRecordsUseCase(repo)

	out, err := uc.Create(context.Background(), createReq("it-1", 5, 10))
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.TotalCogs.Equal(decimal.NewFromInt(50)), "total: %s", out.TotalCogs)
	assert.Equal(t, "2024-01-01", out.PeriodStart)
	assert.Equal(t, "2024-01-31", out.PeriodEnd)
	require.Len(t, repo.rows, 1)
	assert.True(t, repo.rows[0].TotalCogs.Equal(decimal.NewFromInt(50)))
}

func TestCogsRecords_CreateValidaciones(t *testing.T) {
	uc := NewCogsRecordsUseCase(&fakeRecordRepo{})
	ctx := context.Background()

	req := createReq("", 5, 10)
	_, err := uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "item_id obligatorio")

	req = createReq("it-1", -5, 10)
	_, err = uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")

	req = createReq("it-1", 5, 10)
	req.PeriodStart = "2024-02-01"
	_, err = uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod, "inicio posterior al fin")
}

// El update parcial recalcula total_cogs con los campos resultantes.
func TestCogsRecords_UpdateParcialRecalcula(t *testing.T) {
	repo := &fakeRecordRepo{}
	uc := NewCogsRecordsUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, createReq("it-1", 5, 10))
	require.NoError(t, err)

	newQty := decimal.NewFromInt(8)
	out, err := uc.Update(ctx, created.ID, dto.UpdateCogsRequest{QuantitySold: &newQty})
	require.NoError(t, err)
	assert.True(t, out.QuantitySold.Equal(newQty))
	assert.True(t, out.UnitCost.Equal(decimal.NewFromInt(10)), "unit_cost no cambia")
	assert.True(t, out.TotalCogs.Equal(decimal.NewFromInt(80)), "total recalculado: %s", out.TotalCogs)
}

func TestCogsRecords_UpdatePeriodoParcial(t *testing.T) {
	uc := NewCogsRecordsUseCase(&fakeRecordRepo{})
	ctx := context.Background()

	created, err := uc.Create(ctx, createReq("it-1", 5, 10))
	require.NoError(t, err)

	// Mover solo el fin hacia atrás del inicio vigente debe fallar.
	badEnd := "2023-12-31"
	_, err = uc.Update(ctx, created.ID, dto.UpdateCogsRequest{PeriodEnd: &badEnd})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	goodEnd := "2024-02-29"
	out, err := uc.Update(ctx, created.ID, dto.UpdateCogsRequest{PeriodEnd: &goodEnd})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", out.PeriodStart)
	assert.Equal(t, "2024-02-29", out.PeriodEnd)
}

func TestCogsRecords_UpdateNoExistente(t *testing.T) {
	uc := NewCogsRecordsUseCase(&fakeRecordRepo{})
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateCogsRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCogsRecords_Delete(t *testing.T) {
	repo := &fakeRecordRepo{}
	uc := NewCogsRecordsUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, createReq("it-1", 5, 10))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.Empty(t, repo.rows)

	err = uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCogsRecords_ListPorPeriodo(t *testing.T) {
	repo := &fakeRecordRepo{}
	uc := NewCogsRecordsUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, createReq("it-1", 5, 10))
	require.NoError(t, err)
	feb := createReq("it-2", 2, 4)
	feb.PeriodStart = "2024-02-01"
	feb.PeriodEnd = "2024-02-29"
	_, err = uc.Create(ctx, feb)
	require.NoError(t, err)

	all, err := uc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	jan, err := uc.List(ctx, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Len(t, jan, 1)
	assert.Equal(t, "it-1", jan[0].ItemID)

	_, err = uc.List(ctx, "2024-03-01", "2024-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
