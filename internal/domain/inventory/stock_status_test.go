package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-pos/internal/domain"
	"github.com/jhoicas/Inventario-pos/internal/domain/inventory"
)

func intPtr(v int) *int { return &v }

func TestClassify_Fronteras(t *testing.T) {
	cases := []struct {
		name     string
		qty      int
		minStock *int
		want     inventory.StockTier
	}{
		{"cero siempre agotado", 0, intPtr(5), inventory.OutOfStock},
		{"cero con umbral cero", 0, intPtr(0), inventory.OutOfStock},
		{"igual al mínimo es bajo", 5, intPtr(5), inventory.LowStock},
		{"uno es bajo", 1, intPtr(5), inventory.LowStock},
		{"mínimo+1 es medio", 6, intPtr(5), inventory.MediumStock},
		{"doble del mínimo es medio", 10, intPtr(5), inventory.MediumStock},
		{"doble+1 es normal", 11, intPtr(5), inventory.InStock},
		{"mínimo 1: 2 es medio", 2, intPtr(1), inventory.MediumStock},
		{"mínimo 1: 3 es normal", 3, intPtr(1), inventory.InStock},
		{"mínimo explícito 0 nunca bajo", 1, intPtr(0), inventory.InStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.Classify(tc.qty, tc.minStock, 99))
		})
	}
}

func TestClassify_UsaUmbralGlobalSiNoHayPropio(t *testing.T) {
	assert.Equal(t, inventory.LowStock, inventory.Classify(5, nil, 5))
	assert.Equal(t, inventory.MediumStock, inventory.Classify(6, nil, 5))
	assert.Equal(t, inventory.InStock, inventory.Classify(6, nil, 2))
}

func TestStockTier_Etiquetas(t *testing.T) {
	assert.Equal(t, "Out of Stock", inventory.OutOfStock.Label())
	assert.Equal(t, "Medium Stock", inventory.MediumStock.Label())
	assert.Equal(t, "low-stock", inventory.LowStock.String())
	assert.Equal(t, "in-stock", inventory.InStock.String())
}

func TestStockFilter_Matches(t *testing.T) {
	threshold := intPtr(5)

	assert.True(t, inventory.FilterInStock.Matches(6, threshold, 0), "6 > 5 cuenta como en stock (incluye medio)")
	assert.False(t, inventory.FilterInStock.Matches(5, threshold, 0))

	assert.True(t, inventory.FilterLowStock.Matches(5, threshold, 0))
	assert.True(t, inventory.FilterLowStock.Matches(1, threshold, 0))
	assert.False(t, inventory.FilterLowStock.Matches(0, threshold, 0), "agotado no es bajo")

	assert.True(t, inventory.FilterOutOfStock.Matches(0, threshold, 0))
	assert.False(t, inventory.FilterOutOfStock.Matches(1, threshold, 0))

	assert.True(t, inventory.FilterAll.Matches(0, threshold, 0))
	assert.False(t, inventory.StockFilter("medium").Valid())
}

func TestWholeQuantity(t *testing.T) {
	n, err := inventory.WholeQuantity(decimal.NewFromInt(7))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = inventory.WholeQuantity(decimal.RequireFromString("3.00"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = inventory.WholeQuantity(decimal.NewFromInt(-2))
	require.NoError(t, err, "el signo lo valida quien llama")
	assert.Equal(t, -2, n)

	_, err = inventory.WholeQuantity(decimal.RequireFromString("1.5"))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = inventory.WholeQuantity(decimal.RequireFromString("1e12"))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}
