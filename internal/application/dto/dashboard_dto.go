package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	// Inventario
	TotalProducts   int             `json:"total_products"`
	TotalStock      int             `json:"total_stock"`     // unidades
	InventoryValue  decimal.Decimal `json:"inventory_value"` // Σ qty * price
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`

	Distribution StockDistributionDTO `json:"stock_distribution"`

	// Ventas de hoy (00:00 – 24:00 en la zona configurada)
	TodayRevenue decimal.Decimal `json:"today_revenue"`
	TodayOrders  int             `json:"today_orders"`

	// Histórico completo
	TotalSales   int             `json:"total_sales"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`

	Currency       string `json:"currency"`
	TodayFormatted string `json:"today_revenue_formatted"` // ej: "₹1,250.5"
}

// StockDistributionDTO productos por estado (medium cuenta como en stock).
type StockDistributionDTO struct {
	InStock    int `json:"in_stock"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}
