// Package report agrupa el historial de ventas en periodos (día, semana, mes)
// y deriva pedidos, unidades, ingresos y ticket promedio. Solo lectura.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-pos/internal/domain"
	"github.com/jhoicas/Inventario-pos/internal/domain/entity"
	"github.com/jhoicas/Inventario-pos/pkg/money"
)

// Granularity tamaño del periodo de agrupación.
type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
)

// ParseGranularity valida la granularidad; vacío equivale a Day.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "", Day:
		return Day, nil
	case Week:
		return Week, nil
	case Month:
		return Month, nil
	}
	return "", fmt.Errorf("%w: granularidad desconocida %q", domain.ErrInvalidInput, s)
}

// Metrics métricas de un periodo o del total.
type Metrics struct {
	Orders        int
	Units         int
	Revenue       decimal.Decimal
	AvgOrderValue decimal.Decimal
}

// Period fila del reporte.
type Period struct {
	Key   string
	Start time.Time
	Metrics
}

// Report periodos en orden ascendente y totales con la misma forma.
type Report struct {
	Granularity Granularity
	Start       time.Time
	End         time.Time
	Periods     []Period
	Totals      Metrics
}

// Bucket agrupa las ventas con fecha en [start, end). Un time.Time cero en start o end
// deja ese extremo abierto. Las claves se calculan en loc (nil = time.Local).
func Bucket(sales []entity.Sale, start, end time.Time, g Granularity, loc *time.Location) Report {
	if loc == nil {
		loc = time.Local
	}
	if g == "" {
		g = Day
	}

	byKey := make(map[string]*Period)
	for i := range sales {
		s := &sales[i]
		if !start.IsZero() && s.Date.Before(start) {
			continue
		}
		if !end.IsZero() && !s.Date.Before(end) {
			continue
		}
		periodStart, key := periodOf(s.Date.In(loc), g)
		p, ok := byKey[key]
		if !ok {
			p = &Period{Key: key, Start: periodStart, Metrics: Metrics{Revenue: decimal.Zero}}
			byKey[key] = p
		}
		p.Orders++
		p.Units += s.Quantity
		p.Revenue = p.Revenue.Add(s.Total)
	}

	out := Report{Granularity: g, Start: start, End: end, Periods: make([]Period, 0, len(byKey))}
	out.Totals.Revenue = decimal.Zero
	for _, p := range byKey {
		p.AvgOrderValue = average(p.Revenue, p.Orders)
		out.Periods = append(out.Periods, *p)
		out.Totals.Orders += p.Orders
		out.Totals.Units += p.Units
		out.Totals.Revenue = out.Totals.Revenue.Add(p.Revenue)
	}
	sort.Slice(out.Periods, func(i, j int) bool {
		return out.Periods[i].Start.Before(out.Periods[j].Start)
	})
	out.Totals.AvgOrderValue = average(out.Totals.Revenue, out.Totals.Orders)
	return out
}

// StartOfDay medianoche de t en su zona horaria.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek domingo a medianoche de la semana de t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// StartOfMonth día 1 a medianoche del mes de t.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func periodOf(t time.Time, g Granularity) (time.Time, string) {
	switch g {
	case Week:
		ws := StartOfWeek(t)
		return ws, ws.Format("2006-01-02")
	case Month:
		ms := StartOfMonth(t)
		return ms, ms.Format("2006-01")
	default:
		ds := StartOfDay(t)
		return ds, ds.Format("2006-01-02")
	}
}

func average(revenue decimal.Decimal, orders int) decimal.Decimal {
	if orders == 0 {
		return decimal.Zero
	}
	return money.Round2(revenue.Div(decimal.NewFromInt(int64(orders))))
}
