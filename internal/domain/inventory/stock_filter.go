package inventory

// StockFilter filtro de listados por nivel de stock.
// A diferencia de Classify, "in-stock" aquí agrupa MediumStock e InStock (qty > min).
type StockFilter string

const (
	FilterAll        StockFilter = ""
	FilterInStock    StockFilter = "in-stock"
	FilterLowStock   StockFilter = "low-stock"
	FilterOutOfStock StockFilter = "out-of-stock"
)

// Valid indica si el filtro es conocido.
func (f StockFilter) Valid() bool {
	switch f {
	case FilterAll, FilterInStock, FilterLowStock, FilterOutOfStock:
		return true
	}
	return false
}

// Matches evalúa el filtro contra la cantidad y el umbral efectivo.
func (f StockFilter) Matches(quantity int, minStock *int, defaultMinStock int) bool {
	threshold := EffectiveMinStock(minStock, defaultMinStock)
	switch f {
	case FilterInStock:
		return quantity > threshold
	case FilterLowStock:
		return quantity > 0 && quantity <= threshold
	case FilterOutOfStock:
		return quantity == 0
	default:
		return true
	}
}
