package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/costeo-api/internal/application/costing"
	"github.com/jhoicas/costeo-api/internal/application/dto"
)

// CogsHandler maneja las peticiones HTTP de cálculo y registros COGS (protegido).
type CogsHandler struct {
	calculator *costing.CogsCalculator
	aggregator *costing.ReportAggregator
	records    *costing.CogsRecordsUseCase
}

// NewCogsHandler construye el handler.
func NewCogsHandler(
	calculator *costing.CogsCalculator,
	aggregator *costing.ReportAggregator,
	records *costing.CogsRecordsUseCase,
) *CogsHandler {
	return &CogsHandler{calculator: calculator, aggregator: aggregator, records: records}
}

// Calculate godoc
// @Summary      Calcular COGS del período (transitorio, no persiste)
// @Tags         cogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateCogsRequest  true  "period_start, period_end, item_ids opcional"
// @Success      200   {object}  dto.CalculateCogsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cogs/calculate [post]
func (h *CogsHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculateCogsRequest
	if err := dto.DecodeBody(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.calculator.Calculate(c.Context(), in.PeriodStart, in.PeriodEnd, in.ItemIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// GetReport godoc
// @Summary      Reporte de rentabilidad: ingreso, COGS, utilidad y margen por ítem
// @Tags         cogs
// @Security     Bearer
// @Produce      json
// @Param        period_start  query  string  true  "YYYY-MM-DD"
// @Param        period_end    query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.CogsReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cogs/report [get]
func (h *CogsHandler) GetReport(c *fiber.Ctx) error {
	start := queryParam(c, "period_start", "periodStart")
	end := queryParam(c, "period_end", "periodEnd")
	report, err := h.aggregator.GetReport(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// List godoc
// @Summary      Listar registros COGS persistidos
// @Tags         cogs
// @Security     Bearer
// @Produce      json
// @Param        period_start  query  string  false  "YYYY-MM-DD"
// @Param        period_end    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   dto.CogsRecordDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cogs [get]
func (h *CogsHandler) List(c *fiber.Ctx) error {
	start := queryParam(c, "period_start", "periodStart")
	end := queryParam(c, "period_end", "periodEnd")
	records, err := h.records.List(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(records), "records": records})
}

// Create godoc
// @Summary      Crear registro COGS manual (total_cogs se deriva en el servidor)
// @Tags         cogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCogsRequest  true  "period_start, period_end, item_id, quantity_sold, unit_cost"
// @Success      201   {object}  dto.CogsRecordDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cogs [post]
func (h *CogsHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCogsRequest
	if err := dto.DecodeBody(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.records.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// Update godoc
// @Summary      Actualizar registro COGS (parcial; total_cogs se recalcula)
// @Tags         cogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateCogsRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.CogsRecordDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cogs/{id} [put]
func (h *CogsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCogsRequest
	if err := dto.DecodeBody(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.records.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(record)
}

// Delete godoc
// @Summary      Eliminar registro COGS
// @Tags         cogs
// @Security     Bearer
// @Param        id  path  string  true  "ID del registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cogs/{id} [delete]
func (h *CogsHandler) Delete(c *fiber.Ctx) error {
	if err := h.records.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
