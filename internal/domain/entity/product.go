package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto de un producto.
const (
	DefaultCategory = "Other"
	DefaultUnit     = "pieces"
)

// Product representa un artículo del inventario.
// Quantity es el stock disponible (nunca negativo). MinStock nil significa "sin umbral propio":
// se usa Settings.DefaultMinStock. Un MinStock explícito de 0 desactiva la alerta de stock bajo.
type Product struct {
	ID        string
	Name      string
	Category  string
	Quantity  int
	Unit      string
	Price     decimal.Decimal // redondeado a 2 decimales
	MinStock  *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Value devuelve el valor del stock (Quantity * Price).
func (p *Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Clone devuelve una copia profunda (MinStock incluido).
func (p *Product) Clone() *Product {
	c := *p
	if p.MinStock != nil {
		v := *p.MinStock
		c.MinStock = &v
	}
	return &c
}
