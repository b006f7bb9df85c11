package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/costeo-api/internal/application/costing"
	"github.com/jhoicas/costeo-api/internal/application/dto"
)

// ValuationHandler maneja las peticiones HTTP de valoración de inventario (protegido).
type ValuationHandler struct {
	engine *costing.ValuationEngine
	sync   *costing.BatchSyncUseCase
	pdf    *costing.ValuationPDFUseCase
}

// NewValuationHandler construye el handler.
func NewValuationHandler(
	engine *costing.ValuationEngine,
	sync *costing.BatchSyncUseCase,
	pdf *costing.ValuationPDFUseCase,
) *ValuationHandler {
	return &ValuationHandler{engine: engine, sync: sync, pdf: pdf}
}

// List godoc
// @Summary      Listar observaciones de valoración
// @Tags         valuations
// @Security     Bearer
// @Produce      json
// @Param        as_of_date        query  string  false  "corte YYYY-MM-DD"
// @Param        valuation_method  query  string  false  "fifo | lifo | weighted_average | specific_identification"
// @Success      200  {array}   dto.ValuationDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/valuations [get]
func (h *ValuationHandler) List(c *fiber.Ctx) error {
	asOf := queryParam(c, "as_of_date", "asOfDate")
	method := queryParam(c, "valuation_method", "valuationMethod")
	valuations, err := h.engine.List(c.Context(), asOf, method)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(valuations), "valuations": valuations})
}

// Calculate godoc
// @Summary      Snapshot de valoración a una fecha de corte
// @Tags         valuations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateValuationRequest  true  "as_of_date, valuation_method"
// @Success      200   {object}  dto.ValuationSnapshotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/valuations/calculate [post]
func (h *ValuationHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculateValuationRequest
	if err := dto.DecodeBody(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	snapshot, err := h.engine.Calculate(c.Context(), in.AsOfDate, in.ValuationMethod)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snapshot)
}

// DownloadPDF godoc
// @Summary      Descargar el snapshot de valoración como PDF
// @Tags         valuations
// @Security     Bearer
// @Produce      application/pdf
// @Param        as_of_date        query  string  true  "corte YYYY-MM-DD"
// @Param        valuation_method  query  string  true  "método de valoración"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/valuations/report.pdf [get]
func (h *ValuationHandler) DownloadPDF(c *fiber.Ctx) error {
	asOf := queryParam(c, "as_of_date", "asOfDate")
	method := queryParam(c, "valuation_method", "valuationMethod")
	pdfBytes, filename, err := h.pdf.DownloadValuationPDF(c.Context(), asOf, method)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// Sync godoc
// @Summary      Sincronizar valoraciones desde lotes externos (best-effort)
// @Description  Hace upsert por (item_id, batch_date, método). Las entradas que
//
//	fallan se reportan en errors[] sin detener el resto del lote.
//
// @Tags         valuations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SyncValuationsRequest  true  "valuation_method, batches"
// @Success      200   {object}  dto.SyncResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/valuations/sync [post]
func (h *ValuationHandler) Sync(c *fiber.Ctx) error {
	var in dto.SyncValuationsRequest
	if err := dto.DecodeBody(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.sync.SyncFromBatches(c.Context(), in.ValuationMethod, in.Batches)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
