// Package pdf genera la versión imprimible de los reportes de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte   │  Rango + Moneda             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Periodo | Pedidos | Unidades | Ingresos | Promedio  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Pedidos / Unidades / Ingresos / Promedio          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/infrastructure/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// anchos de columna (grilla de 12) para Periodo | Pedidos | Unidades | Ingresos | Promedio
var columnSizes = []int{4, 2, 2, 2, 2}

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportPDFGenerator renderiza un dto.ReportDTO usando Maroto v2.
type ReportPDFGenerator struct {
	author string
}

// NewReportPDFGenerator construye el generador; author se graba en los metadatos.
func NewReportPDFGenerator(author string) *ReportPDFGenerator {
	return &ReportPDFGenerator{author: author}
}

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *ReportPDFGenerator) GenerateReportPDF(ctx context.Context, report *dto.ReportDTO) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	table := export.ReportTable(report, false)
	m.AddRows(tableHeaderRow(table.Headers))
	if len(table.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin ventas en el periodo", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	for _, cells := range table.Rows {
		m.AddRows(detailRow(cells))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y rango de fechas + moneda (der).
func headerRow(report *dto.ReportDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Agrupado por: "+report.Granularity, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(report.Period.StartDate+" a "+report.Period.EndDate, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Moneda: "+report.Currency, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla con fondo primario.
func tableHeaderRow(headers []string) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(columnSizes[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// detailRow: una fila por periodo.
func detailRow(cells []string) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, c := range cells {
		p := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if i == 0 {
			p = props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1}
		}
		cols = append(cols, col.New(columnSizes[i]).Add(text.New(c, p)))
	}
	return row.New(7).Add(cols...)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(report *dto.ReportDTO) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	t := report.Totals

	return row.New(26).Add(
		col.New(6),
		col.New(3).Add(
			label("Pedidos:", 1),
			label("Unidades vendidas:", 7),
			label("Promedio por pedido:", 13),
			text.New("INGRESOS:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 19,
			}),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", t.Orders), 1),
			value(fmt.Sprintf("%d", t.UnitsSold), 7),
			value(report.Currency+" "+t.AvgOrderValue.StringFixed(2), 13),
			text.New(report.Currency+" "+t.Revenue.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 19,
			}),
		),
	)
}
