package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRequest entrada común de la vista previa y el registro de una venta.
type SaleRequest struct {
	ProductID     string          `json:"product_id" validate:"required"`
	Quantity      decimal.Decimal `json:"quantity"`       // entero > 0
	DiscountType  string          `json:"discount_type"`  // flat | percent (vacío = flat)
	DiscountValue decimal.Decimal `json:"discount_value"` // >= 0
	RoundingMode  string          `json:"rounding_mode"`  // none | nearest1 | nearest2
}

// SalePreviewResponse cotización sin efectos; InsufficientStock advierte antes de registrar.
type SalePreviewResponse struct {
	ProductID         string          `json:"product_id"`
	Product           string          `json:"product"`
	Quantity          int             `json:"quantity"`
	Available         int             `json:"available"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	DiscountType      string          `json:"discount_type"`
	DiscountValue     decimal.Decimal `json:"discount_value"`
	DiscountApplied   decimal.Decimal `json:"discount_applied"`
	RawTotal          decimal.Decimal `json:"raw_total"`
	Total             decimal.Decimal `json:"total"`
	InsufficientStock bool            `json:"insufficient_stock"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	ProductID       string          `json:"product_id"`
	Product         string          `json:"product"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountType    string          `json:"discount_type"`
	DiscountValue   decimal.Decimal `json:"discount_value"`
	DiscountApplied decimal.Decimal `json:"discount_applied"`
	Total           decimal.Decimal `json:"total"`
}

// SaleListResponse historial (más reciente primero) con totales del listado.
type SaleListResponse struct {
	Items   []SaleResponse  `json:"items"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ReverseSaleResponse resultado de anular una venta. ProductQuantity es nil cuando el
// producto ya no existe y no hubo stock que restaurar.
type ReverseSaleResponse struct {
	Sale            SaleResponse `json:"sale"`
	StockRestored   bool         `json:"stock_restored"`
	ProductQuantity *int         `json:"product_quantity,omitempty"`
}
