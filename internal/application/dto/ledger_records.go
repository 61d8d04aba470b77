package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-pos/internal/domain/entity"
	"github.com/jhoicas/Inventario-pos/pkg/money"
)

// Formato persistido de inventario, ventas y configuración. Es el mismo que usa el
// respaldo (backup) para que un archivo exportado pueda restaurarse tal cual.

// BackupVersion versión del formato del respaldo.
const BackupVersion = "2.0"

// ProductRecord producto serializado.
type ProductRecord struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Category  string      `json:"category"`
	Qty       int         `json:"qty"`
	Unit      string      `json:"unit"`
	Price     json.Number `json:"price"`
	MinStock  *int        `json:"minStock,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// SaleRecord venta serializada.
type SaleRecord struct {
	ID              string      `json:"id"`
	Date            time.Time   `json:"date"`
	Product         string      `json:"product"`
	ProductID       string      `json:"productId"`
	Qty             int         `json:"qty"`
	Price           json.Number `json:"price"`
	Subtotal        json.Number `json:"subtotal"`
	DiscountType    string      `json:"discountType"`
	DiscountValue   json.Number `json:"discountValue"`
	DiscountApplied json.Number `json:"discountApplied"`
	Total           json.Number `json:"total"`
}

// SettingsRecord configuración serializada. En una restauración solo se aplican los
// campos presentes.
type SettingsRecord struct {
	DefaultMinStock *int    `json:"defaultMinStock,omitempty"`
	Currency        *string `json:"currency,omitempty"`
	Notifications   *bool   `json:"notifications,omitempty"`
}

// BackupBundle respaldo completo. Inventory y SalesHistory son obligatorios al restaurar
// (un arreglo vacío es válido, la ausencia no).
type BackupBundle struct {
	Inventory    []ProductRecord `json:"inventory"`
	SalesHistory []SaleRecord    `json:"salesHistory"`
	Settings     *SettingsRecord `json:"settings,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
	Version      string          `json:"version"`
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func parseNumber(n json.Number, field string) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

// ProductToRecord convierte la entidad al formato persistido.
func ProductToRecord(p *entity.Product) ProductRecord {
	var minStock *int
	if p.MinStock != nil {
		v := *p.MinStock
		minStock = &v
	}
	return ProductRecord{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Qty:       p.Quantity,
		Unit:      p.Unit,
		Price:     number(p.Price),
		MinStock:  minStock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToEntity valida el registro y lo convierte en entidad. Completa categoría y unidad por defecto.
func (r ProductRecord) ToEntity() (*entity.Product, error) {
	if r.ID == "" || strings.TrimSpace(r.Name) == "" {
		return nil, fmt.Errorf("producto sin id o nombre")
	}
	if r.Qty < 0 {
		return nil, fmt.Errorf("producto %s: cantidad negativa", r.ID)
	}
	price, err := parseNumber(r.Price, "price")
	if err != nil {
		return nil, fmt.Errorf("producto %s: %w", r.ID, err)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("producto %s: precio negativo", r.ID)
	}
	if r.MinStock != nil && *r.MinStock < 0 {
		return nil, fmt.Errorf("producto %s: stock mínimo negativo", r.ID)
	}
	p := &entity.Product{
		ID:        r.ID,
		Name:      r.Name,
		Category:  r.Category,
		Quantity:  r.Qty,
		Unit:      r.Unit,
		Price:     money.Round2(price),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if p.Category == "" {
		p.Category = entity.DefaultCategory
	}
	if p.Unit == "" {
		p.Unit = entity.DefaultUnit
	}
	if r.MinStock != nil {
		v := *r.MinStock
		p.MinStock = &v
	}
	return p, nil
}

// SaleToRecord convierte la venta al formato persistido.
func SaleToRecord(s *entity.Sale) SaleRecord {
	return SaleRecord{
		ID:              s.ID,
		Date:            s.Date,
		Product:         s.Product,
		ProductID:       s.ProductID,
		Qty:             s.Quantity,
		Price:           number(s.UnitPrice),
		Subtotal:        number(s.Subtotal),
		DiscountType:    s.DiscountType,
		DiscountValue:   number(s.DiscountValue),
		DiscountApplied: number(s.DiscountApplied),
		Total:           number(s.Total),
	}
}

// ToEntity valida el registro y lo convierte en venta.
func (r SaleRecord) ToEntity() (*entity.Sale, error) {
	if r.ID == "" {
		return nil, fmt.Errorf("venta sin id")
	}
	if r.Qty <= 0 {
		return nil, fmt.Errorf("venta %s: cantidad no positiva", r.ID)
	}
	s := &entity.Sale{
		ID:           r.ID,
		Date:         r.Date,
		ProductID:    r.ProductID,
		Product:      r.Product,
		Quantity:     r.Qty,
		DiscountType: r.DiscountType,
	}
	if s.DiscountType == "" {
		s.DiscountType = entity.DiscountFlat
	}
	fields := []struct {
		dst  *decimal.Decimal
		src  json.Number
		name string
	}{
		{&s.UnitPrice, r.Price, "price"},
		{&s.Subtotal, r.Subtotal, "subtotal"},
		{&s.DiscountValue, r.DiscountValue, "discountValue"},
		{&s.DiscountApplied, r.DiscountApplied, "discountApplied"},
		{&s.Total, r.Total, "total"},
	}
	for _, f := range fields {
		d, err := parseNumber(f.src, f.name)
		if err != nil {
			return nil, fmt.Errorf("venta %s: %w", r.ID, err)
		}
		if d.IsNegative() {
			return nil, fmt.Errorf("venta %s: %s negativo", r.ID, f.name)
		}
		*f.dst = d
	}
	if s.DiscountType != entity.DiscountFlat && s.DiscountType != entity.DiscountPercent {
		return nil, fmt.Errorf("venta %s: tipo de descuento %q", r.ID, s.DiscountType)
	}
	if s.DiscountApplied.GreaterThan(s.Subtotal) {
		return nil, fmt.Errorf("venta %s: descuento mayor que el subtotal", r.ID)
	}
	return s, nil
}

// SettingsToRecord serializa la configuración completa.
func SettingsToRecord(s entity.Settings) SettingsRecord {
	minStock, currency, notifications := s.DefaultMinStock, s.Currency, s.Notifications
	return SettingsRecord{
		DefaultMinStock: &minStock,
		Currency:        &currency,
		Notifications:   &notifications,
	}
}

// MergeInto aplica sobre base los campos presentes y válidos del registro.
func (r SettingsRecord) MergeInto(base entity.Settings) entity.Settings {
	if r.DefaultMinStock != nil && *r.DefaultMinStock > 0 {
		base.DefaultMinStock = *r.DefaultMinStock
	}
	if r.Currency != nil {
		base.Currency = money.NormalizeCurrency(*r.Currency)
	}
	if r.Notifications != nil {
		base.Notifications = *r.Notifications
	}
	return base
}
