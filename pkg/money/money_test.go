package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-pos/pkg/money"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRound2_MitadHaciaArriba(t *testing.T) {
	assert.True(t, dec("5.00").Equal(money.Round2(dec("4.995"))))
	assert.True(t, dec("1.23").Equal(money.Round2(dec("1.234"))))
	assert.True(t, dec("0").Equal(money.Round2(decimal.Zero)))
}

func TestApplyRounding_Modos(t *testing.T) {
	cases := []struct {
		name  string
		value string
		mode  string
		want  string
	}{
		{"none deja igual", "44.955", money.RoundingNone, "44.955"},
		{"vacío deja igual", "44.955", "", "44.955"},
		{"nearest1 sube", "44.955", money.RoundingNearest1, "45"},
		{"nearest1 baja", "44.49", money.RoundingNearest1, "44"},
		{"nearest2 a múltiplo de 2", "44.955", money.RoundingNearest2, "44"},
		{"nearest2 mitad sube", "45", money.RoundingNearest2, "46"},
		{"nearest2 cerca de 47", "46.9", money.RoundingNearest2, "46"},
		{"modo desconocido", "3.3", "ceil", "3.3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := money.ApplyRounding(dec(tc.value), tc.mode)
			assert.True(t, dec(tc.want).Equal(got), "got %s want %s", got, tc.want)
		})
	}
}

func TestIsRoundingMode(t *testing.T) {
	assert.True(t, money.IsRoundingMode(""))
	assert.True(t, money.IsRoundingMode("nearest2"))
	assert.False(t, money.IsRoundingMode("nearest5"))
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, "USD", money.NormalizeCurrency("usd"))
	assert.Equal(t, "INR", money.NormalizeCurrency(""))
	assert.Equal(t, "INR", money.NormalizeCurrency("no-es-moneda"))
}

func TestFormat_MontosPequenos(t *testing.T) {
	assert.Equal(t, "₹14", money.Format(dec("14.00"), "INR"))
	assert.Equal(t, "₹14.5", money.Format(dec("14.50"), "INR"))
	assert.Equal(t, "$0", money.Format(decimal.Zero, "USD"))
	assert.Equal(t, "JPY 5", money.Format(dec("5"), "JPY"))
}
