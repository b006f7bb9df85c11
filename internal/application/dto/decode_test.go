package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"periodStart":      "period_start",
		"itemId":           "item_id",
		"valuationMethod":  "valuation_method",
		"parseID":          "parse_id",
		"period_start":     "period_start",
		"quantity":         "quantity",
		"availableQty":     "available_qty",
		"HTTPStatusCode":   "http_status_code",
		"already_snake_id": "already_snake_id",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToSnakeCase(in), "entrada: %s", in)
	}
}

// Las dos convenciones de claves producen exactamente el mismo struct.
func TestDecodeBody_CamelYSnakeEquivalentes(t *testing.T) {
	camel := []byte(`{
		"periodStart": "2024-01-01",
		"periodEnd": "2024-01-31",
		"itemIds": ["it-1", "it-2"]
	}`)
	snake := []byte(`{
		"period_start": "2024-01-01",
		"period_end": "2024-01-31",
		"item_ids": ["it-1", "it-2"]
	}`)

	var fromCamel, fromSnake CalculateCogsRequest
	require.NoError(t, DecodeBody(camel, &fromCamel))
	require.NoError(t, DecodeBody(snake, &fromSnake))
	assert.Equal(t, fromSnake, fromCamel)
	assert.Equal(t, "2024-01-01", fromCamel.PeriodStart)
	assert.Equal(t, []string{"it-1", "it-2"}, fromCamel.ItemIDs)
}

// La normalización alcanza objetos anidados en arreglos, y los números llegan
// al tipo decimal sin pasar por float64.
func TestDecodeBody_AnidadoYDecimales(t *testing.T) {
	body := []byte(`{
		"valuationMethod": "fifo",
		"batches": [
			{"itemId": "it-1", "batchDate": "2024-01-10", "availableQty": "10.5", "unitCost": 0.1}
		]
	}`)

	var req SyncValuationsRequest
	require.NoError(t, DecodeBody(body, &req))
	assert.Equal(t, "fifo", req.ValuationMethod)
	require.Len(t, req.Batches, 1)
	assert.Equal(t, "it-1", req.Batches[0].ItemID)
	assert.True(t, req.Batches[0].AvailableQty.Equal(decimal.RequireFromString("10.5")))
	// 0.1 textual, no la aproximación binaria de float64.
	assert.Equal(t, "0.1", req.Batches[0].UnitCost.String())
}

func TestDecodeBody_JSONInvalido(t *testing.T) {
	var req CalculateCogsRequest
	err := DecodeBody([]byte(`{"period_start": `), &req)
	assert.Error(t, err)
}
