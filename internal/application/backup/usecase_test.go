package backup_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-pos/internal/application/backup"
	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/application/sales"
	"github.com/jhoicas/Inventario-pos/internal/application/usecase"
	"github.com/jhoicas/Inventario-pos/internal/domain"
	"github.com/jhoicas/Inventario-pos/internal/testutil"
	"github.com/jhoicas/Inventario-pos/pkg/logger"
)

type fixture struct {
	ledger   *testutil.Ledger
	products *usecase.ProductUseCase
	sales    *sales.SaleUseCase
	settings *usecase.SettingsUseCase
	data     *backup.DataUseCase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ledger := testutil.NewLedger(t)
	clock := testutil.NewFixedClock(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	return fixture{
		ledger:   ledger,
		products: usecase.NewProductUseCase(ledger.Runner, clock, testutil.NewSequenceIDs("p"), false),
		sales:    sales.NewSaleUseCase(ledger.Runner, clock, testutil.NewSequenceIDs("s"), logger.Nop()),
		settings: usecase.NewSettingsUseCase(ledger.Runner),
		data:     backup.NewDataUseCase(ledger.Runner, ledger.Store, clock, logger.Nop()),
	}
}

func (f fixture) populate(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "Widget", Quantity: decimal.NewFromInt(10), Price: decimal.RequireFromString("5.00")})
	require.NoError(t, err)
	_, err = f.sales.Commit(ctx, dto.SaleRequest{ProductID: p.ID, Quantity: decimal.NewFromInt(3)})
	require.NoError(t, err)
}

func TestBackupRestore_IdaYVuelta(t *testing.T) {
	src := newFixture(t)
	src.populate(t)
	bundle, err := src.data.Backup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.0", bundle.Version)
	require.Len(t, bundle.Inventory, 1)
	require.Len(t, bundle.SalesHistory, 1)

	raw, err := json.Marshal(bundle)
	require.NoError(t, err)
	var decoded dto.BackupBundle
	require.NoError(t, json.Unmarshal(raw, &decoded))

	dst := newFixture(t)
	res, err := dst.data.Restore(context.Background(), decoded)
	require.NoError(t, err)
	assert.Equal(t, dto.RestoreResponse{Products: 1, Sales: 1}, *res)

	list, err := dst.products.List(context.Background(), dto.ProductQuery{})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, 7, list.Items[0].Quantity)

	history, err := dst.sales.History(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, 1, history.Count)
	assert.True(t, decimal.RequireFromString("15").Equal(history.Items[0].Total))
}

func TestRestore_RequiereInventarioEHistorial(t *testing.T) {
	f := newFixture(t)
	var bundle dto.BackupBundle
	require.NoError(t, json.Unmarshal([]byte(`{"inventory":[]}`), &bundle))

	_, err := f.data.Restore(context.Background(), bundle)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRestore_CombinaConfiguracion(t *testing.T) {
	f := newFixture(t)
	f.populate(t)
	var bundle dto.BackupBundle
	require.NoError(t, json.Unmarshal([]byte(`{"inventory":[],"salesHistory":[],"settings":{"currency":"EUR"}}`), &bundle))

	_, err := f.data.Restore(context.Background(), bundle)
	require.NoError(t, err)

	s, err := f.settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EUR", s.Currency)
	assert.Equal(t, 5, s.DefaultMinStock, "los campos ausentes se conservan")
	list, _ := f.products.List(context.Background(), dto.ProductQuery{})
	assert.Zero(t, list.Total, "el inventario se reemplaza")
}

func TestRestore_RegistroInvalidoNoModificaNada(t *testing.T) {
	f := newFixture(t)
	f.populate(t)
	var bundle dto.BackupBundle
	require.NoError(t, json.Unmarshal([]byte(`{"inventory":[{"id":"x","name":"","qty":1}],"salesHistory":[]}`), &bundle))

	_, err := f.data.Restore(context.Background(), bundle)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	list, _ := f.products.List(context.Background(), dto.ProductQuery{})
	assert.Equal(t, 1, list.Total)
}

func TestClearAll(t *testing.T) {
	f := newFixture(t)
	f.populate(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.data.ClearAll(ctx, "delete all"), domain.ErrInvalidInput)
	list, _ := f.products.List(ctx, dto.ProductQuery{})
	assert.Equal(t, 1, list.Total)

	require.NoError(t, f.data.ClearAll(ctx, backup.ClearAllConfirmation))

	list, _ = f.products.List(ctx, dto.ProductQuery{})
	assert.Zero(t, list.Total)
	history, _ := f.sales.History(ctx, 0)
	assert.Zero(t, history.Count)

	reopened := usecase.NewProductUseCase(f.ledger.Reopen().Runner, nil, nil, false)
	list, err := reopened.List(ctx, dto.ProductQuery{})
	require.NoError(t, err)
	assert.Zero(t, list.Total, "los blobs fueron borrados")
}

func TestRestore_RegistrosQueRompenReglas(t *testing.T) {
	const goodProduct = `{"id":"p-1","name":"Widget","qty":2,"price":5}`
	tests := []struct {
		name   string
		bundle string
	}{
		{"precio negativo", `{"inventory":[{"id":"p-1","name":"Widget","qty":2,"price":-5}],"salesHistory":[]}`},
		{"stock mínimo negativo", `{"inventory":[{"id":"p-1","name":"Widget","qty":2,"price":5,"minStock":-1}],"salesHistory":[]}`},
		{"venta con cantidad cero", `{"inventory":[` + goodProduct + `],"salesHistory":[{"id":"s-1","productId":"p-1","qty":0,"price":5,"subtotal":0,"total":0}]}`},
		{"venta con cantidad negativa", `{"inventory":[` + goodProduct + `],"salesHistory":[{"id":"s-1","productId":"p-1","qty":-10,"price":5,"subtotal":50,"total":50}]}`},
		{"venta con total negativo", `{"inventory":[` + goodProduct + `],"salesHistory":[{"id":"s-1","productId":"p-1","qty":1,"price":5,"subtotal":5,"total":-5}]}`},
		{"descuento mayor que el subtotal", `{"inventory":[` + goodProduct + `],"salesHistory":[{"id":"s-1","productId":"p-1","qty":1,"price":5,"subtotal":5,"discountApplied":8,"total":0}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.populate(t)
			var bundle dto.BackupBundle
			require.NoError(t, json.Unmarshal([]byte(tt.bundle), &bundle))

			_, err := f.data.Restore(context.Background(), bundle)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			list, err := f.products.List(context.Background(), dto.ProductQuery{})
			require.NoError(t, err)
			require.Equal(t, 1, list.Total)
			assert.Equal(t, "Widget", list.Items[0].Name)
			assert.Equal(t, 7, list.Items[0].Quantity, "el inventario previo se conserva")
			history, _ := f.sales.History(context.Background(), 0)
			assert.Equal(t, 1, history.Count)
		})
	}
}

func TestRestoreReverse_StockNuncaNegativo(t *testing.T) {
	f := newFixture(t)
	var bundle dto.BackupBundle
	require.NoError(t, json.Unmarshal([]byte(`{"inventory":[{"id":"p-1","name":"Widget","qty":2,"price":5}],
		"salesHistory":[{"id":"s-1","productId":"p-1","qty":3,"price":5,"subtotal":15,"discountType":"flat","total":15}]}`), &bundle))
	_, err := f.data.Restore(context.Background(), bundle)
	require.NoError(t, err)

	out, err := f.sales.Reverse(context.Background(), "s-1")

	require.NoError(t, err)
	require.NotNil(t, out.ProductQuantity)
	assert.Equal(t, 5, *out.ProductQuantity)
	assert.GreaterOrEqual(t, *out.ProductQuantity, 0)
}
