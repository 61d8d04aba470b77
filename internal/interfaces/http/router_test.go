package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-pos/internal/application/analytics"
	"github.com/jhoicas/Inventario-pos/internal/application/backup"
	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/application/sales"
	"github.com/jhoicas/Inventario-pos/internal/application/usecase"
	"github.com/jhoicas/Inventario-pos/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Inventario-pos/internal/interfaces/http"
	"github.com/jhoicas/Inventario-pos/internal/testutil"
	"github.com/jhoicas/Inventario-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)

// buildTestApp arma la API completa sobre un libro en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	ledger := testutil.NewLedger(t)
	clock := testutil.NewFixedClock(testNow)
	log := logger.Nop()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:         usecase.NewProductUseCase(ledger.Runner, clock, testutil.NewSequenceIDs("p"), false),
		SettingsUC:        usecase.NewSettingsUseCase(ledger.Runner),
		SaleUC:            sales.NewSaleUseCase(ledger.Runner, clock, testutil.NewSequenceIDs("s"), log),
		ReportUC:          analytics.NewReportUseCase(ledger.Runner, clock),
		DashboardUC:       analytics.NewDashboardUseCase(ledger.Runner, clock),
		DataUC:            backup.NewDataUseCase(ledger.Runner, ledger.Store, clock, log),
		ReportPDF:         pdf.NewReportPDFGenerator("test"),
		Clock:             clock,
		Logger:            log,
		SalesHistoryLimit: 50,
	})
	return app
}

// doRequest lanza la petición con cuerpo JSON opcional.
func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var e dto.ErrorResponse
	decode(t, resp, &e)
	return e.Code
}

func createWidget(t *testing.T, app *fiber.App) dto.ProductResponse {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/products", map[string]any{
		"name": "Widget", "category": "Tools", "quantity": 10, "price": 5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var p dto.ProductResponse
	decode(t, resp, &p)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CrearYConsultar(t *testing.T) {
	app := buildTestApp(t)
	p := createWidget(t, app)

	resp := doRequest(t, app, http.MethodGet, "/api/products/"+p.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.ProductResponse
	decode(t, resp, &got)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, 10, got.Quantity)
	assert.True(t, decimal.NewFromInt(50).Equal(got.Value))
}

func TestProducts_NoEncontrado(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/products/no-existe", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

func TestProducts_NombreDuplicadoDevuelve409(t *testing.T) {
	app := buildTestApp(t)
	createWidget(t, app)

	resp := doRequest(t, app, http.MethodPost, "/api/products", map[string]any{
		"name": "  widget ", "quantity": 1, "price": 1,
	})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", errorCode(t, resp))
}

func TestProducts_CuerpoInvalido(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader("{no-json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errorCode(t, resp))
}

func TestProducts_FiltroPorStock(t *testing.T) {
	app := buildTestApp(t)
	createWidget(t, app)
	resp := doRequest(t, app, http.MethodPost, "/api/products", map[string]any{
		"name": "Bolt", "quantity": 0, "price": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/products?stock=out-of-stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ProductListResponse
	decode(t, resp, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Bolt", list.Items[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sales
// ──────────────────────────────────────────────────────────────────────────────

func TestSales_RegistrarYAnular(t *testing.T) {
	app := buildTestApp(t)
	p := createWidget(t, app)

	resp := doRequest(t, app, http.MethodPost, "/api/sales", map[string]any{
		"product_id": p.ID, "quantity": 3, "discount_type": "flat", "discount_value": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sale dto.SaleResponse
	decode(t, resp, &sale)
	assert.True(t, decimal.NewFromInt(14).Equal(sale.Total))

	resp = doRequest(t, app, http.MethodGet, "/api/products/"+p.ID, nil)
	var after dto.ProductResponse
	decode(t, resp, &after)
	assert.Equal(t, 7, after.Quantity)

	resp = doRequest(t, app, http.MethodDelete, "/api/sales/"+sale.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rev dto.ReverseSaleResponse
	decode(t, resp, &rev)
	assert.True(t, rev.StockRestored)

	resp = doRequest(t, app, http.MethodDelete, "/api/sales/"+sale.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestSales_StockInsuficienteDevuelve409(t *testing.T) {
	app := buildTestApp(t)
	p := createWidget(t, app)

	resp := doRequest(t, app, http.MethodPost, "/api/sales", map[string]any{
		"product_id": p.ID, "quantity": 11,
	})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", errorCode(t, resp))
}

func TestSales_CantidadInvalidaDevuelve400(t *testing.T) {
	app := buildTestApp(t)
	p := createWidget(t, app)

	resp := doRequest(t, app, http.MethodPost, "/api/sales", map[string]any{
		"product_id": p.ID, "quantity": 0,
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUANTITY", errorCode(t, resp))
}

func TestSales_PreviewNoModificaStock(t *testing.T) {
	app := buildTestApp(t)
	p := createWidget(t, app)

	resp := doRequest(t, app, http.MethodPost, "/api/sales/preview", map[string]any{
		"product_id": p.ID, "quantity": 12,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var preview dto.SalePreviewResponse
	decode(t, resp, &preview)
	assert.True(t, preview.InsufficientStock)

	resp = doRequest(t, app, http.MethodGet, "/api/sales", nil)
	var history dto.SaleListResponse
	decode(t, resp, &history)
	assert.Equal(t, 0, history.Count)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reports y exportaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestReports_DailyCSV(t *testing.T) {
	app := buildTestApp(t)
	p := createWidget(t, app)
	resp := doRequest(t, app, http.MethodPost, "/api/sales", map[string]any{"product_id": p.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/reports/daily?format=csv", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Contains(t, resp.Header.Get("Content-Disposition"), "report_2024-03-13.csv")
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	body, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Period,Orders,Units Sold,Revenue,Avg Order Value", lines[0])
	assert.Equal(t, "2024-03-13,1,2,10.00,10.00", lines[1])
}

func TestReports_PDF(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/reports/weekly?format=pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestReports_FormatoDesconocido(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/reports/monthly?format=xml", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestReports_RangoSinFechas(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/reports/range?start_date=2024-03-01", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

func TestReports_ShareSinVentas(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/reports/today/share", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestExport_InventarioCSV(t *testing.T) {
	app := buildTestApp(t)
	createWidget(t, app)

	resp := doRequest(t, app, http.MethodGet, "/api/export/inventory.csv", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventory_2024-03-13.csv")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Widget,Tools,10,pieces,5.00,5,50.00,")
}

// ──────────────────────────────────────────────────────────────────────────────
// Settings y datos
// ──────────────────────────────────────────────────────────────────────────────

func TestSettings_UmbralInvalido(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPut, "/api/settings", map[string]any{"default_min_stock": 0})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestData_RespaldoYRestauracion(t *testing.T) {
	app := buildTestApp(t)
	createWidget(t, app)

	resp := doRequest(t, app, http.MethodGet, "/api/backup", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bundle dto.BackupBundle
	decode(t, resp, &bundle)
	require.Len(t, bundle.Inventory, 1)

	resp = doRequest(t, app, http.MethodPost, "/api/data/clear", map[string]any{"confirm": "DELETE ALL"})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/backup/restore", bundle)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var restored dto.RestoreResponse
	decode(t, resp, &restored)
	assert.Equal(t, 1, restored.Products)
	assert.Equal(t, 0, restored.Sales)
}

func TestData_BorradoSinConfirmacion(t *testing.T) {
	app := buildTestApp(t)
	createWidget(t, app)

	resp := doRequest(t, app, http.MethodPost, "/api/data/clear", map[string]any{"confirm": "yes"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/products", nil)
	var list dto.ProductListResponse
	decode(t, resp, &list)
	assert.Equal(t, 1, list.Total)
}
