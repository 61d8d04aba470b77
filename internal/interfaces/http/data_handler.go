package http

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-pos/internal/application/backup"
	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/application/ports"
	"github.com/jhoicas/Inventario-pos/internal/application/sales"
	"github.com/jhoicas/Inventario-pos/internal/application/usecase"
	"github.com/jhoicas/Inventario-pos/internal/infrastructure/export"
	"github.com/jhoicas/Inventario-pos/pkg/logger"
)

// DataHandler exportaciones CSV, respaldo, restauración y borrado total.
type DataHandler struct {
	data     *backup.DataUseCase
	products *usecase.ProductUseCase
	sales    *sales.SaleUseCase
	clock    ports.Clock
	log      *logger.Logger
}

// NewDataHandler construye el handler.
func NewDataHandler(data *backup.DataUseCase, products *usecase.ProductUseCase, saleUC *sales.SaleUseCase, clock ports.Clock, log *logger.Logger) *DataHandler {
	return &DataHandler{data: data, products: products, sales: saleUC, clock: clock, log: log}
}

// ExportInventory godoc
// @Summary      Exportar inventario en CSV
// @Description  Acepta los mismos filtros que el listado de productos.
// @Tags         data
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/export/inventory.csv [get]
func (h *DataHandler) ExportInventory(c *fiber.Ctx) error {
	var q dto.ProductQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	list, err := h.products.List(c.Context(), q)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return h.sendCSV(c, "inventory", export.InventoryTable(list.Items))
}

// ExportSales godoc
// @Summary      Exportar historial de ventas en CSV
// @Tags         data
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/export/sales.csv [get]
func (h *DataHandler) ExportSales(c *fiber.Ctx) error {
	list, err := h.sales.History(c.Context(), 0)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return h.sendCSV(c, "sales", export.SalesTable(list.Items, h.clock.Location()))
}

// Backup godoc
// @Summary      Descargar respaldo completo
// @Tags         data
// @Produce      json
// @Success      200  {object}  dto.BackupBundle
// @Router       /api/backup [get]
func (h *DataHandler) Backup(c *fiber.Ctx) error {
	bundle, err := h.data.Backup(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	body, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Attachment(export.FileName("inventory_backup", h.now(), "json"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(body)
}

// Restore godoc
// @Summary      Restaurar respaldo
// @Description  Reemplaza inventario e historial; la configuración se combina con la actual.
// @Tags         data
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BackupBundle  true  "Respaldo"
// @Success      200   {object}  dto.RestoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/backup/restore [post]
func (h *DataHandler) Restore(c *fiber.Ctx) error {
	var bundle dto.BackupBundle
	if err := c.BodyParser(&bundle); err != nil {
		return invalidBody(c)
	}
	out, err := h.data.Restore(c.Context(), bundle)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ClearAll godoc
// @Summary      Borrar todos los datos
// @Description  Requiere confirm = "DELETE ALL".
// @Tags         data
// @Accept       json
// @Param        body  body  dto.ClearAllRequest  true  "Confirmación"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/data/clear [post]
func (h *DataHandler) ClearAll(c *fiber.Ctx) error {
	var in dto.ClearAllRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.data.ClearAll(c.Context(), in.Confirm); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *DataHandler) sendCSV(c *fiber.Ctx, prefix string, t export.Table) error {
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, t); err != nil {
		return writeError(c, h.log, err)
	}
	return sendAttachment(c, export.FileName(prefix, h.now(), "csv"), "text/csv; charset=utf-8", buf.Bytes())
}

func (h *DataHandler) now() time.Time {
	return h.clock.Now().In(h.clock.Location())
}
