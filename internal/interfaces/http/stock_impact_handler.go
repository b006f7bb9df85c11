package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/costeo-api/internal/application/costing"
	"github.com/jhoicas/costeo-api/internal/application/dto"
)

// StockImpactHandler maneja las peticiones HTTP del libro de impactos (protegido).
type StockImpactHandler struct {
	calculator *costing.StockImpactCalculator
	ledger     *costing.StockLedgerUseCase
}

// NewStockImpactHandler construye el handler.
func NewStockImpactHandler(calculator *costing.StockImpactCalculator, ledger *costing.StockLedgerUseCase) *StockImpactHandler {
	return &StockImpactHandler{calculator: calculator, ledger: ledger}
}

// Calculate godoc
// @Summary      Sintetizar y persistir impactos de stock del período
// @Description  Recorre ventas, compras y ajustes del período y escribe los
//
//	asientos resultantes. Recalcular sobre una ventana que se
//	superpone duplica asientos: no hay clave de idempotencia.
//
// @Tags         stock-impacts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateStockImpactsRequest  true  "period_start, period_end, item_ids (solo filtra ajustes)"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock-impacts/calculate [post]
func (h *StockImpactHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculateStockImpactsRequest
	if err := dto.DecodeBody(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	impacts, err := h.calculator.Calculate(c.Context(), in.PeriodStart, in.PeriodEnd, in.ItemIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"total": len(impacts), "impacts": impacts})
}

// List godoc
// @Summary      Listar asientos del libro de impactos
// @Tags         stock-impacts
// @Security     Bearer
// @Produce      json
// @Param        period_start  query  string  false  "YYYY-MM-DD"
// @Param        period_end    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   dto.StockImpactDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock-impacts [get]
func (h *StockImpactHandler) List(c *fiber.Ctx) error {
	start := queryParam(c, "period_start", "periodStart")
	end := queryParam(c, "period_end", "periodEnd")
	impacts, err := h.ledger.List(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(impacts), "impacts": impacts})
}

// Delete godoc
// @Summary      Eliminar un asiento del libro (borrado directo)
// @Tags         stock-impacts
// @Security     Bearer
// @Param        id  path  string  true  "ID del asiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-impacts/{id} [delete]
func (h *StockImpactHandler) Delete(c *fiber.Ctx) error {
	if err := h.ledger.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
