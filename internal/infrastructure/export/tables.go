// Package export arma las tablas exportables (inventario, ventas, reportes) con columnas
// en orden fijo y las escribe como CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
)

// Encabezados de cada tabla.
var (
	InventoryHeaders = []string{"Name", "Category", "Quantity", "Unit", "Price", "Min Stock", "Total Value", "Status"}
	SalesHeaders     = []string{"DateTime", "Product", "Quantity", "Unit Price", "Subtotal", "Discount Type", "Discount Value", "Discount Applied", "Total"}
	ReportHeaders    = []string{"Period", "Orders", "Units Sold", "Revenue", "Avg Order Value"}
)

const dateTimeLayout = "2006-01-02 15:04:05"

// Table filas de texto listas para CSV o PDF.
type Table struct {
	Headers []string
	Rows    [][]string
}

// InventoryTable una fila por producto; Min Stock es el umbral efectivo.
func InventoryTable(products []dto.ProductResponse) Table {
	t := Table{Headers: InventoryHeaders, Rows: make([][]string, 0, len(products))}
	for _, p := range products {
		t.Rows = append(t.Rows, []string{
			p.Name,
			p.Category,
			strconv.Itoa(p.Quantity),
			p.Unit,
			p.Price.StringFixed(2),
			strconv.Itoa(p.EffectiveMinStock),
			p.Value.StringFixed(2),
			p.StatusLabel,
		})
	}
	return t
}

// SalesTable una fila por venta, con la fecha en loc (nil = sin conversión).
func SalesTable(sales []dto.SaleResponse, loc *time.Location) Table {
	t := Table{Headers: SalesHeaders, Rows: make([][]string, 0, len(sales))}
	for _, s := range sales {
		date := s.Date
		if loc != nil {
			date = date.In(loc)
		}
		t.Rows = append(t.Rows, []string{
			date.Format(dateTimeLayout),
			s.Product,
			strconv.Itoa(s.Quantity),
			s.UnitPrice.StringFixed(2),
			s.Subtotal.StringFixed(2),
			s.DiscountType,
			s.DiscountValue.String(),
			s.DiscountApplied.StringFixed(2),
			s.Total.StringFixed(2),
		})
	}
	return t
}

// ReportTable una fila por periodo. withTotals agrega la fila TOTAL al final.
func ReportTable(r *dto.ReportDTO, withTotals bool) Table {
	t := Table{Headers: ReportHeaders, Rows: make([][]string, 0, len(r.Periods)+1)}
	for _, p := range r.Periods {
		t.Rows = append(t.Rows, []string{
			p.Period,
			strconv.Itoa(p.Orders),
			strconv.Itoa(p.UnitsSold),
			p.Revenue.StringFixed(2),
			p.AvgOrderValue.StringFixed(2),
		})
	}
	if withTotals {
		t.Rows = append(t.Rows, []string{
			"TOTAL",
			strconv.Itoa(r.Totals.Orders),
			strconv.Itoa(r.Totals.UnitsSold),
			r.Totals.Revenue.StringFixed(2),
			r.Totals.AvgOrderValue.StringFixed(2),
		})
	}
	return t
}

// WriteCSV escribe encabezados y filas; los campos con comas o comillas se escapan.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("csv: encabezados: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("csv: filas: %w", err)
	}
	return nil
}

// FileName nombre de descarga con la fecha, p.ej. inventory_2024-03-10.csv.
func FileName(prefix string, now time.Time, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format("2006-01-02"), ext)
}
