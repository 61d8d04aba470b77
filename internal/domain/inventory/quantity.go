package inventory

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-pos/internal/domain"
)

// WholeQuantity convierte una cantidad decimal en unidades enteras.
// Devuelve ErrInvalidQuantity si tiene parte fraccionaria o no cabe en un int32.
func WholeQuantity(d decimal.Decimal) (int, error) {
	if !d.IsInteger() {
		return 0, domain.ErrInvalidQuantity
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) || d.LessThan(decimal.NewFromInt(math.MinInt32)) {
		return 0, domain.ErrInvalidQuantity
	}
	return int(d.IntPart()), nil
}
