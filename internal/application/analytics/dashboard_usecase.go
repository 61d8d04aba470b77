package analytics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/application/ports"
	"github.com/jhoicas/Inventario-pos/internal/domain/entity"
	"github.com/jhoicas/Inventario-pos/internal/domain/inventory"
	"github.com/jhoicas/Inventario-pos/internal/domain/report"
	"github.com/jhoicas/Inventario-pos/internal/domain/repository"
	"github.com/jhoicas/Inventario-pos/pkg/money"
)

const (
	defaultTopProducts = 5 // productos en el widget del dashboard
	maxTopProducts     = 100
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase indicadores del inventario y de las ventas.
type DashboardUseCase struct {
	tx    ports.TxRunner
	clock ports.Clock
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(tx ports.TxRunner, clock ports.Clock) *DashboardUseCase {
	return &DashboardUseCase{tx: tx, clock: clock}
}

type ledgerView struct {
	products []*entity.Product
	sales    []*entity.Sale
	settings entity.Settings
}

func (uc *DashboardUseCase) load(ctx context.Context) (*ledgerView, error) {
	v := &ledgerView{}
	err := uc.tx.View(ctx, func(products repository.ProductRepository, sales repository.SaleRepository, cfg repository.SettingsRepository) error {
		var err error
		if v.products, err = products.List(); err != nil {
			return err
		}
		if v.sales, err = sales.List(); err != nil {
			return err
		}
		v.settings, err = cfg.Get()
		return err
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Summary KPIs de inventario, ventas de hoy y acumulado histórico.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	v, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryDTO{
		TotalProducts:  len(v.products),
		InventoryValue: decimal.Zero,
		TodayRevenue:   decimal.Zero,
		TotalRevenue:   decimal.Zero,
		Currency:       v.settings.Currency,
	}

	// ── Inventario ─────────────────────────────────────────────────────────────
	for _, p := range v.products {
		out.TotalStock += p.Quantity
		out.InventoryValue = out.InventoryValue.Add(p.Value())
		switch inventory.Classify(p.Quantity, p.MinStock, v.settings.DefaultMinStock) {
		case inventory.OutOfStock:
			out.OutOfStockCount++
			out.Distribution.OutOfStock++
		case inventory.LowStock:
			out.LowStockCount++
			out.Distribution.LowStock++
		default:
			out.Distribution.InStock++
		}
	}
	out.InventoryValue = money.Round2(out.InventoryValue)

	// ── Ventas ─────────────────────────────────────────────────────────────────
	start := report.StartOfDay(uc.clock.Now().In(uc.clock.Location()))
	end := start.AddDate(0, 0, 1)
	for _, s := range v.sales {
		out.TotalSales++
		out.TotalRevenue = out.TotalRevenue.Add(s.Total)
		if !s.Date.Before(start) && s.Date.Before(end) {
			out.TodayOrders++
			out.TodayRevenue = out.TodayRevenue.Add(s.Total)
		}
	}
	out.TodayRevenue = money.Round2(out.TodayRevenue)
	out.TotalRevenue = money.Round2(out.TotalRevenue)
	out.TodayFormatted = money.Format(out.TodayRevenue, v.settings.Currency)
	return out, nil
}

// TopProducts ranking por ingresos agrupado por el nombre guardado en cada venta,
// de modo que los productos eliminados siguen apareciendo.
func (uc *DashboardUseCase) TopProducts(ctx context.Context, limit int) ([]dto.TopProductDTO, error) {
	if limit <= 0 {
		limit = defaultTopProducts
	}
	if limit > maxTopProducts {
		limit = maxTopProducts
	}
	v, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	byName := map[string]*dto.TopProductDTO{}
	var rows []*dto.TopProductDTO
	for _, s := range v.sales {
		row, ok := byName[s.Product]
		if !ok {
			row = &dto.TopProductDTO{Product: s.Product, Revenue: decimal.Zero}
			byName[s.Product] = row
			rows = append(rows, row)
		}
		row.Orders++
		row.UnitsSold += s.Quantity
		row.Revenue = row.Revenue.Add(s.Total)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Revenue.GreaterThan(rows[j].Revenue) })
	if len(rows) > limit {
		rows = rows[:limit]
	}

	out := make([]dto.TopProductDTO, 0, len(rows))
	for i, r := range rows {
		r.Rank = i + 1
		r.Revenue = money.Round2(r.Revenue)
		out = append(out, *r)
	}
	return out, nil
}

// CategoryPerformance ingresos por categoría. La categoría se resuelve con la referencia
// débil de la venta; si el producto ya no existe cuenta como "Other".
func (uc *DashboardUseCase) CategoryPerformance(ctx context.Context) ([]dto.CategoryPerformanceDTO, error) {
	v, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	categoryOf := make(map[string]string, len(v.products))
	for _, p := range v.products {
		categoryOf[p.ID] = p.Category
	}

	byCategory := map[string]*dto.CategoryPerformanceDTO{}
	total := decimal.Zero
	for _, s := range v.sales {
		cat, ok := categoryOf[s.ProductID]
		if !ok || cat == "" {
			cat = entity.DefaultCategory
		}
		row, ok := byCategory[cat]
		if !ok {
			row = &dto.CategoryPerformanceDTO{Category: cat, Revenue: decimal.Zero}
			byCategory[cat] = row
		}
		row.Orders++
		row.UnitsSold += s.Quantity
		row.Revenue = row.Revenue.Add(s.Total)
		total = total.Add(s.Total)
	}

	out := make([]dto.CategoryPerformanceDTO, 0, len(byCategory))
	for _, row := range byCategory {
		row.RevenuePct = decimal.Zero
		if total.IsPositive() {
			row.RevenuePct = row.Revenue.Div(total).Mul(hundred).Round(2)
		}
		row.Revenue = money.Round2(row.Revenue)
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Revenue.Equal(out[j].Revenue) {
			return out[i].Revenue.GreaterThan(out[j].Revenue)
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}
