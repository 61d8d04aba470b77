// Package pricing calcula el precio de una venta (subtotal, descuento y total redondeado).
// La vista previa y el registro de la venta usan la misma función para que lo mostrado
// y lo guardado nunca difieran.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-pos/internal/domain"
	"github.com/jhoicas/Inventario-pos/internal/domain/entity"
	"github.com/jhoicas/Inventario-pos/pkg/money"
)

var hundred = decimal.NewFromInt(100)

// QuoteInput datos de entrada de una cotización.
type QuoteInput struct {
	UnitPrice     decimal.Decimal
	Quantity      int
	DiscountType  string // flat | percent (vacío = flat)
	DiscountValue decimal.Decimal
	RoundingMode  string // none | nearest1 | nearest2 (vacío = none)
}

// Quote resultado con todos los valores intermedios.
type Quote struct {
	UnitPrice     decimal.Decimal
	Quantity      int
	Subtotal      decimal.Decimal // round2(UnitPrice * Quantity)
	DiscountType  string
	DiscountValue decimal.Decimal
	Discount      decimal.Decimal // round2(descuento acotado a [0, Subtotal])
	RawTotal      decimal.Decimal // Subtotal - descuento, antes del redondeo
	Total         decimal.Decimal // round2(ApplyRounding(RawTotal))
}

// ComputeQuote calcula la cotización:
//
//	subtotal = price * qty
//	flat:    discount = min(value, subtotal)
//	percent: discount = min(subtotal * value / 100, subtotal)
//	total    = round2(rounding(subtotal - discount))
func ComputeQuote(in QuoteInput) (Quote, error) {
	if in.Quantity <= 0 {
		return Quote{}, domain.ErrInvalidQuantity
	}
	if in.UnitPrice.IsNegative() {
		return Quote{}, fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
	}
	if in.DiscountValue.IsNegative() {
		return Quote{}, fmt.Errorf("%w: el descuento no puede ser negativo", domain.ErrInvalidInput)
	}
	discountType := in.DiscountType
	if discountType == "" {
		discountType = entity.DiscountFlat
	}
	if !money.IsRoundingMode(in.RoundingMode) {
		return Quote{}, fmt.Errorf("%w: modo de redondeo %q", domain.ErrInvalidInput, in.RoundingMode)
	}

	subtotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))

	var discount decimal.Decimal
	switch discountType {
	case entity.DiscountFlat:
		discount = in.DiscountValue
	case entity.DiscountPercent:
		discount = subtotal.Mul(in.DiscountValue).Div(hundred)
	default:
		return Quote{}, fmt.Errorf("%w: tipo de descuento %q", domain.ErrInvalidInput, in.DiscountType)
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	raw := subtotal.Sub(discount)
	total := money.Round2(money.ApplyRounding(raw, in.RoundingMode))

	return Quote{
		UnitPrice:     in.UnitPrice,
		Quantity:      in.Quantity,
		Subtotal:      money.Round2(subtotal),
		DiscountType:  discountType,
		DiscountValue: in.DiscountValue,
		Discount:      money.Round2(discount),
		RawTotal:      raw,
		Total:         total,
	}, nil
}
