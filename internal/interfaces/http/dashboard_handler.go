package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-pos/internal/application/analytics"
	"github.com/jhoicas/Inventario-pos/pkg/logger"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetSummary devuelve los indicadores de inventario y ventas.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_products, inventory_value, stock_distribution,
// today_revenue, today_orders, total_revenue, currency).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(summary)
}

// GetTopProducts ranking de productos por ingresos.
// GET /api/dashboard/top-products?limit=5
func (h *DashboardHandler) GetTopProducts(c *fiber.Ctx) error {
	out, err := h.uc.TopProducts(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetCategoryPerformance ingresos por categoría con su participación.
// GET /api/dashboard/categories
func (h *DashboardHandler) GetCategoryPerformance(c *fiber.Ctx) error {
	out, err := h.uc.CategoryPerformance(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
