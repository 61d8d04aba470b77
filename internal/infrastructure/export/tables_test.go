package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/infrastructure/export"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestInventoryTable_CSV(t *testing.T) {
	table := export.InventoryTable([]dto.ProductResponse{{
		Name: "Pens, blue", Category: "Stationery", Quantity: 3, Unit: "pieces",
		Price: d("1.5"), EffectiveMinStock: 5, Value: d("4.5"), StatusLabel: "Low Stock",
	}})

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, table))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, export.InventoryHeaders, records[0])
	assert.Equal(t, []string{"Pens, blue", "Stationery", "3", "pieces", "1.50", "5", "4.50", "Low Stock"}, records[1])
}

func TestSalesTable(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	table := export.SalesTable([]dto.SaleResponse{{
		Date: time.Date(2024, 3, 10, 4, 30, 0, 0, time.UTC), Product: "Widget", Quantity: 3,
		UnitPrice: d("5"), Subtotal: d("15"), DiscountType: "flat", DiscountValue: d("1"),
		DiscountApplied: d("1"), Total: d("14"),
	}}, ist)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"2024-03-10 10:00:00", "Widget", "3", "5.00", "15.00", "flat", "1", "1.00", "14.00"}, table.Rows[0])
}

func TestReportTable_ConTotales(t *testing.T) {
	r := &dto.ReportDTO{
		Periods: []dto.ReportPeriodDTO{
			{Period: "2024-03-10", Orders: 2, UnitsSold: 5, Revenue: d("20"), AvgOrderValue: d("10")},
		},
		Totals: dto.ReportTotalsDTO{Orders: 2, UnitsSold: 5, Revenue: d("20"), AvgOrderValue: d("10")},
	}

	assert.Len(t, export.ReportTable(r, false).Rows, 1)
	table := export.ReportTable(r, true)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"TOTAL", "2", "5", "20.00", "10.00"}, table.Rows[1])
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "sales_2024-03-10.csv", export.FileName("sales", time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC), "csv"))
}
