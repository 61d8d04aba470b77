package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/application/sales"
	"github.com/jhoicas/Inventario-pos/pkg/logger"
)

// SaleHandler maneja el punto de venta y el historial.
type SaleHandler struct {
	uc           *sales.SaleUseCase
	log          *logger.Logger
	historyLimit int
}

// NewSaleHandler construye el handler. historyLimit es el límite por defecto del historial (0 = todo).
func NewSaleHandler(uc *sales.SaleUseCase, log *logger.Logger, historyLimit int) *SaleHandler {
	return &SaleHandler{uc: uc, log: log, historyLimit: historyLimit}
}

// Preview godoc
// @Summary      Cotizar una venta sin registrarla
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "Venta a cotizar"
// @Success      200   {object}  dto.SalePreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/preview [post]
func (h *SaleHandler) Preview(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Preview(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Registrar venta
// @Description  Descuenta el stock y agrega la venta al historial en una sola operación.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "Venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Commit(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Commit(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Reverse godoc
// @Summary      Anular venta
// @Description  Devuelve las unidades al producto si todavía existe y elimina la venta.
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.ReverseSaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Reverse(c *fiber.Ctx) error {
	out, err := h.uc.Reverse(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de ventas (más recientes primero)
// @Tags         sales
// @Produce      json
// @Param        limit  query  int  false  "Máximo de ventas; 0 = todas"
// @Success      200    {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.historyLimit)
	if limit < 0 {
		limit = 0
	}
	out, err := h.uc.History(c.Context(), limit)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Today godoc
// @Summary      Ventas de hoy
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales/today [get]
func (h *SaleHandler) Today(c *fiber.Ctx) error {
	out, err := h.uc.Today(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
