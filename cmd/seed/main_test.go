package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/application/usecase"
	"github.com/jhoicas/Inventario-pos/internal/testutil"
	"github.com/jhoicas/Inventario-pos/pkg/logger"
)

const sampleCatalog = `products:
  - name: Widget
    category: Tools
    quantity: 10
    price: "5.00"
  - name: Café molido
    category: Pantry
    quantity: 4
    unit: kg
    price: 12.5
    min_stock: 0
`

func TestLoadCatalog_UTF8(t *testing.T) {
	items, err := loadCatalog(strings.NewReader(sampleCatalog), "utf-8")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Widget", items[0].Name)
	assert.Equal(t, "10", items[0].Quantity.String())
	assert.Nil(t, items[0].MinStock)
	assert.Equal(t, "Café molido", items[1].Name)
	require.NotNil(t, items[1].MinStock)
	assert.Equal(t, 0, *items[1].MinStock)
}

func TestLoadCatalog_Latin1(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String(sampleCatalog)
	require.NoError(t, err)

	items, err := loadCatalog(bytes.NewReader([]byte(encoded)), "latin1")

	require.NoError(t, err)
	assert.Equal(t, "Café molido", items[1].Name)
}

func TestLoadCatalog_PrecioInvalido(t *testing.T) {
	_, err := loadCatalog(strings.NewReader("products:\n  - name: X\n    price: abc\n"), "")
	assert.Error(t, err)
}

func TestLoadCatalog_CodificacionDesconocida(t *testing.T) {
	_, err := loadCatalog(strings.NewReader(sampleCatalog), "ebcdic")
	assert.Error(t, err)
}

func TestLoadCatalog_Vacio(t *testing.T) {
	items, err := loadCatalog(strings.NewReader(""), "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSeed_OmiteDuplicados(t *testing.T) {
	ledger := testutil.NewLedger(t)
	uc := usecase.NewProductUseCase(ledger.Runner, testutil.NewFixedClock(time.Now()), testutil.NewSequenceIDs("p"), false)
	items, err := loadCatalog(strings.NewReader(sampleCatalog), "")
	require.NoError(t, err)

	created, skipped, err := seed(context.Background(), uc, items, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 0, skipped)

	created, skipped, err = seed(context.Background(), uc, items, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 2, skipped)

	list, err := uc.List(context.Background(), dto.ProductQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
}
