// Package analytics contiene los casos de uso de reportes por periodo y del dashboard.
// Solo leen inventario e historial; nunca modifican el estado.
package analytics

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/application/ports"
	"github.com/jhoicas/Inventario-pos/internal/domain"
	"github.com/jhoicas/Inventario-pos/internal/domain/entity"
	"github.com/jhoicas/Inventario-pos/internal/domain/report"
	"github.com/jhoicas/Inventario-pos/internal/domain/repository"
	"github.com/jhoicas/Inventario-pos/pkg/money"
)

const (
	dateLayout     = "2006-01-02"
	titleDate      = "2/1/2006" // d/m/aaaa
	shareTopItems  = 5
	whatsappPrefix = "https://wa.me/?text="
)

// ReportUseCase reportes diario, semanal, mensual y por rango, agrupados por día salvo
// que el rango pida otra granularidad. Los límites se calculan con el reloj inyectado.
type ReportUseCase struct {
	tx    ports.TxRunner
	clock ports.Clock
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(tx ports.TxRunner, clock ports.Clock) *ReportUseCase {
	return &ReportUseCase{tx: tx, clock: clock}
}

func (uc *ReportUseCase) now() time.Time {
	return uc.clock.Now().In(uc.clock.Location())
}

// Daily ventas de hoy.
func (uc *ReportUseCase) Daily(ctx context.Context) (*dto.ReportDTO, error) {
	now := uc.now()
	start := report.StartOfDay(now)
	end := start.AddDate(0, 0, 1)
	return uc.build(ctx, "Daily Report - "+now.Format(titleDate), start, end, report.Day)
}

// Weekly ventas de la semana en curso (domingo a sábado).
func (uc *ReportUseCase) Weekly(ctx context.Context) (*dto.ReportDTO, error) {
	start := report.StartOfWeek(uc.now())
	end := start.AddDate(0, 0, 7)
	title := fmt.Sprintf("Weekly Report - %s to %s", start.Format(titleDate), end.AddDate(0, 0, -1).Format(titleDate))
	return uc.build(ctx, title, start, end, report.Day)
}

// Monthly ventas del mes en curso.
func (uc *ReportUseCase) Monthly(ctx context.Context) (*dto.ReportDTO, error) {
	now := uc.now()
	start := report.StartOfMonth(now)
	end := start.AddDate(0, 1, 0)
	return uc.build(ctx, "Monthly Report - "+now.Format("January 2006"), start, end, report.Day)
}

// Range reporte entre dos fechas YYYY-MM-DD, ambas inclusive.
func (uc *ReportUseCase) Range(ctx context.Context, req dto.ReportRangeRequest) (*dto.ReportDTO, error) {
	start, end, err := uc.parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	g, err := report.ParseGranularity(req.Granularity)
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("Custom Report - %s to %s", start.Format(titleDate), end.AddDate(0, 0, -1).Format(titleDate))
	return uc.build(ctx, title, start, end, g)
}

// parsePeriod convierte las fechas al rango [start, end+1día) en la zona del reloj.
func (uc *ReportUseCase) parsePeriod(startStr, endStr string) (start, end time.Time, err error) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date y end_date son obligatorios", domain.ErrInvalidInput)
	}
	loc := uc.clock.Location()
	start, err = time.ParseInLocation(dateLayout, startStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date inválido: %v", domain.ErrInvalidInput, err)
	}
	end, err = time.ParseInLocation(dateLayout, endStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date inválido: %v", domain.ErrInvalidInput, err)
	}
	end = end.AddDate(0, 0, 1) // inclusivo hasta el final del día
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date no puede ser posterior a end_date", domain.ErrInvalidInput)
	}
	return start, end, nil
}

func (uc *ReportUseCase) build(ctx context.Context, title string, start, end time.Time, g report.Granularity) (*dto.ReportDTO, error) {
	sales, settings, err := snapshot(ctx, uc.tx)
	if err != nil {
		return nil, err
	}
	r := report.Bucket(sales, start, end, g, uc.clock.Location())

	out := &dto.ReportDTO{
		Title:       title,
		Granularity: string(r.Granularity),
		Period: dto.PeriodDTO{
			StartDate: start.Format(dateLayout),
			EndDate:   end.AddDate(0, 0, -1).Format(dateLayout),
		},
		Currency: settings.Currency,
		Periods:  make([]dto.ReportPeriodDTO, 0, len(r.Periods)),
		Totals: dto.ReportTotalsDTO{
			Orders:        r.Totals.Orders,
			UnitsSold:     r.Totals.Units,
			Revenue:       money.Round2(r.Totals.Revenue),
			AvgOrderValue: r.Totals.AvgOrderValue,
		},
	}
	for _, p := range r.Periods {
		out.Periods = append(out.Periods, dto.ReportPeriodDTO{
			Period:        p.Key,
			Orders:        p.Orders,
			UnitsSold:     p.Units,
			Revenue:       money.Round2(p.Revenue),
			AvgOrderValue: p.AvgOrderValue,
		})
	}
	return out, nil
}

// ShareToday resumen de las ventas de hoy en texto, listo para compartir por WhatsApp.
// Devuelve ErrNotFound si hoy no hubo ventas.
func (uc *ReportUseCase) ShareToday(ctx context.Context) (*dto.ShareMessageDTO, error) {
	sales, settings, err := snapshot(ctx, uc.tx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	start := report.StartOfDay(now)
	end := start.AddDate(0, 0, 1)

	type item struct {
		product string
		units   int
		revenue decimal.Decimal
	}
	var (
		items   []*item
		byName  = map[string]*item{}
		orders  int
		units   int
		revenue = decimal.Zero
	)
	for _, s := range sales {
		if s.Date.Before(start) || !s.Date.Before(end) {
			continue
		}
		orders++
		units += s.Quantity
		revenue = revenue.Add(s.Total)
		it, ok := byName[s.Product]
		if !ok {
			it = &item{product: s.Product, revenue: decimal.Zero}
			byName[s.Product] = it
			items = append(items, it)
		}
		it.units += s.Quantity
		it.revenue = it.revenue.Add(s.Total)
	}
	if orders == 0 {
		return nil, fmt.Errorf("%w: no hay ventas hoy", domain.ErrNotFound)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].revenue.GreaterThan(items[j].revenue) })
	if len(items) > shareTopItems {
		items = items[:shareTopItems]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*📈 Daily Sales Report - %s*\n\n", now.Format(titleDate))
	b.WriteString("*Summary:*\n")
	fmt.Fprintf(&b, "• Orders: %d\n", orders)
	fmt.Fprintf(&b, "• Units Sold: %d\n", units)
	fmt.Fprintf(&b, "• Total Revenue: %s\n\n", money.Format(revenue, settings.Currency))
	b.WriteString("*Top Items:*\n")
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "• %s: %d units - %s", it.product, it.units, money.Format(it.revenue, settings.Currency))
	}
	b.WriteString("\n\n_Generated by Inventory Management System_")

	msg := b.String()
	return &dto.ShareMessageDTO{
		Message: msg,
		URL:     whatsappPrefix + strings.ReplaceAll(url.QueryEscape(msg), "+", "%20"),
	}, nil
}

// snapshot lee ventas y configuración en una vista consistente.
func snapshot(ctx context.Context, tx ports.TxRunner) ([]entity.Sale, entity.Settings, error) {
	var (
		sales    []entity.Sale
		settings entity.Settings
	)
	err := tx.View(ctx, func(_ repository.ProductRepository, repo repository.SaleRepository, cfg repository.SettingsRepository) error {
		list, err := repo.List()
		if err != nil {
			return err
		}
		sales = make([]entity.Sale, 0, len(list))
		for _, s := range list {
			sales = append(sales, *s)
		}
		settings, err = cfg.Get()
		return err
	})
	return sales, settings, err
}
