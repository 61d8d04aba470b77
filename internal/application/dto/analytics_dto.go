package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// ReportRangeRequest parámetros para GET /api/reports/range.
type ReportRangeRequest struct {
	StartDate   string `query:"start_date"`  // YYYY-MM-DD, obligatorio
	EndDate     string `query:"end_date"`    // YYYY-MM-DD, inclusivo, obligatorio
	Granularity string `query:"granularity"` // day | week | month (default day)
}

// ── Reporte por periodos ──────────────────────────────────────────────────────

// ReportPeriodDTO fila de un reporte agregado.
type ReportPeriodDTO struct {
	Period        string          `json:"period"` // 2006-01-02 (día/semana) o 2006-01 (mes)
	Orders        int             `json:"orders"`
	UnitsSold     int             `json:"units_sold"`
	Revenue       decimal.Decimal `json:"revenue"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"` // 0 cuando no hay pedidos
}

// ReportTotalsDTO totales del reporte (misma forma que un periodo).
type ReportTotalsDTO struct {
	Orders        int             `json:"orders"`
	UnitsSold     int             `json:"units_sold"`
	Revenue       decimal.Decimal `json:"revenue"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

// PeriodDTO rango de fechas del reporte ([start, end)).
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ReportDTO respuesta de /api/reports/*.
type ReportDTO struct {
	Title       string            `json:"title"` // ej: "Daily Report - 3/10/2024"
	Granularity string            `json:"granularity"`
	Period      PeriodDTO         `json:"period"`
	Currency    string            `json:"currency"`
	Periods     []ReportPeriodDTO `json:"periods"`
	Totals      ReportTotalsDTO   `json:"totals"`
}

// ── Rankings ──────────────────────────────────────────────────────────────────

// TopProductDTO producto por ingresos (agrupado por el nombre guardado en la venta).
type TopProductDTO struct {
	Rank      int             `json:"rank"`
	Product   string          `json:"product"`
	Orders    int             `json:"orders"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// CategoryPerformanceDTO ingresos por categoría del producto vendido.
// Ventas de productos eliminados cuentan como "Other".
type CategoryPerformanceDTO struct {
	Category   string          `json:"category"`
	Orders     int             `json:"orders"`
	UnitsSold  int             `json:"units_sold"`
	Revenue    decimal.Decimal `json:"revenue"`
	RevenuePct decimal.Decimal `json:"revenue_pct"` // participación % en ingresos totales
}

// ShareMessageDTO resumen de ventas del día para compartir.
type ShareMessageDTO struct {
	Message string `json:"message"`
	URL     string `json:"url"` // enlace wa.me con el mensaje codificado
}
