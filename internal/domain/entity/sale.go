package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento de una venta.
const (
	DiscountFlat    = "flat"    // monto en moneda
	DiscountPercent = "percent" // puntos porcentuales sobre el subtotal
)

// Sale representa una venta registrada contra el stock de un producto.
// ProductID es una referencia débil: la venta sobrevive al borrado del producto y
// Product guarda el nombre en el momento de la venta.
type Sale struct {
	ID              string
	Date            time.Time
	ProductID       string
	Product         string
	Quantity        int
	UnitPrice       decimal.Decimal // precio del producto al momento de la venta
	Subtotal        decimal.Decimal // Quantity * UnitPrice, 2 decimales
	DiscountType    string
	DiscountValue   decimal.Decimal // valor ingresado (monto o porcentaje)
	DiscountApplied decimal.Decimal // descuento resuelto en moneda, <= Subtotal
	Total           decimal.Decimal // >= 0
}

// Clone devuelve una copia de la venta.
func (s *Sale) Clone() *Sale {
	c := *s
	return &c
}
