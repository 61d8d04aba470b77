// Package money agrupa las primitivas de redondeo y formato de moneda.
// Funciones puras, sin estado.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Modos de redondeo aplicados al total de una venta.
const (
	RoundingNone     = "none"
	RoundingNearest1 = "nearest1" // a la unidad monetaria más cercana
	RoundingNearest2 = "nearest2" // al múltiplo de 2 más cercano
)

// DefaultCurrency moneda de visualización cuando la configuración no trae una válida.
const DefaultCurrency = "INR"

var two = decimal.NewFromInt(2)

// Round2 redondea a 2 decimales (mitad alejándose de cero).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// IsRoundingMode indica si mode es un modo de redondeo conocido. Vacío equivale a "none".
func IsRoundingMode(mode string) bool {
	switch mode {
	case "", RoundingNone, RoundingNearest1, RoundingNearest2:
		return true
	}
	return false
}

// ApplyRounding aplica el modo de redondeo al valor. Modos desconocidos lo dejan igual.
func ApplyRounding(value decimal.Decimal, mode string) decimal.Decimal {
	switch mode {
	case RoundingNearest1:
		return value.Round(0)
	case RoundingNearest2:
		return value.Div(two).Round(0).Mul(two)
	default:
		return value
	}
}

// NormalizeCurrency valida un código ISO 4217; si no es válido devuelve DefaultCurrency.
func NormalizeCurrency(code string) string {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return DefaultCurrency
	}
	return unit.String()
}

// symbols símbolos de visualización conocidos; el resto usa el código ISO como prefijo.
var symbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"COP": "$",
}

// Symbol devuelve el símbolo de la moneda (o su código ISO seguido de espacio).
func Symbol(code string) string {
	code = NormalizeCurrency(code)
	if s, ok := symbols[code]; ok {
		return s
	}
	return code + " "
}

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format formatea un monto con agrupación de miles en-IN y hasta 2 decimales,
// p.ej. Format(14, "INR") → "₹14", Format(14.5, "INR") → "₹14.5".
func Format(amount decimal.Decimal, code string) string {
	f, _ := Round2(amount).Float64()
	return Symbol(code) + printer.Sprint(number.Decimal(f, number.MaxFractionDigits(2)))
}
