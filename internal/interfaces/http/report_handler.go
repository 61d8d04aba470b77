package http

import (
	"bytes"
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-pos/internal/application/analytics"
	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/application/ports"
	"github.com/jhoicas/Inventario-pos/internal/infrastructure/export"
	"github.com/jhoicas/Inventario-pos/pkg/logger"
)

// reportRenderer contrato mínimo del generador PDF; lo implementa *pdf.ReportPDFGenerator.
type reportRenderer interface {
	GenerateReportPDF(ctx context.Context, report *dto.ReportDTO) ([]byte, error)
}

// ReportHandler maneja los reportes de ventas y sus descargas.
type ReportHandler struct {
	uc    *analytics.ReportUseCase
	pdf   reportRenderer
	clock ports.Clock
	log   *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase, pdf reportRenderer, clock ports.Clock, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf, clock: clock, log: log}
}

// Daily godoc
// @Summary      Reporte del día
// @Tags         reports
// @Produce      json
// @Produce      text/csv
// @Produce      application/pdf
// @Param        format  query  string  false  "json | csv | pdf"  default(json)
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	r, err := h.uc.Daily(c.Context())
	return h.respond(c, r, err)
}

// Weekly godoc
// @Summary      Reporte de la semana en curso (domingo a sábado)
// @Tags         reports
// @Produce      json
// @Param        format  query  string  false  "json | csv | pdf"  default(json)
// @Success      200  {object}  dto.ReportDTO
// @Router       /api/reports/weekly [get]
func (h *ReportHandler) Weekly(c *fiber.Ctx) error {
	r, err := h.uc.Weekly(c.Context())
	return h.respond(c, r, err)
}

// Monthly godoc
// @Summary      Reporte del mes en curso
// @Tags         reports
// @Produce      json
// @Param        format  query  string  false  "json | csv | pdf"  default(json)
// @Success      200  {object}  dto.ReportDTO
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	r, err := h.uc.Monthly(c.Context())
	return h.respond(c, r, err)
}

// Range godoc
// @Summary      Reporte por rango de fechas
// @Tags         reports
// @Produce      json
// @Param        start_date   query  string  true   "Inicio (YYYY-MM-DD)"
// @Param        end_date     query  string  true   "Fin inclusivo (YYYY-MM-DD)"
// @Param        granularity  query  string  false  "day | week | month"  default(day)
// @Param        format       query  string  false  "json | csv | pdf"    default(json)
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/range [get]
func (h *ReportHandler) Range(c *fiber.Ctx) error {
	var req dto.ReportRangeRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	r, err := h.uc.Range(c.Context(), req)
	return h.respond(c, r, err)
}

// ShareToday godoc
// @Summary      Mensaje de WhatsApp con las ventas de hoy
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ShareMessageDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/today/share [get]
func (h *ReportHandler) ShareToday(c *fiber.Ctx) error {
	out, err := h.uc.ShareToday(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// respond entrega el reporte en el formato pedido.
func (h *ReportHandler) respond(c *fiber.Ctx, r *dto.ReportDTO, err error) error {
	if err != nil {
		return writeError(c, h.log, err)
	}
	switch strings.ToLower(c.Query("format", "json")) {
	case "json":
		return c.JSON(r)
	case "csv":
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, export.ReportTable(r, true)); err != nil {
			return writeError(c, h.log, err)
		}
		return sendAttachment(c, export.FileName("report", h.clock.Now().In(h.clock.Location()), "csv"), "text/csv; charset=utf-8", buf.Bytes())
	case "pdf":
		doc, err := h.pdf.GenerateReportPDF(c.Context(), r)
		if err != nil {
			return writeError(c, h.log, err)
		}
		return sendAttachment(c, export.FileName("report", h.clock.Now().In(h.clock.Location()), "pdf"), "application/pdf", doc)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "format debe ser json, csv o pdf"})
	}
}

func sendAttachment(c *fiber.Ctx, filename, contentType string, body []byte) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(body)
}
