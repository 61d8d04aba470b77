package inventory

// StockTier nivel de stock derivado de la cantidad y el umbral mínimo.
// Se deriva en cada lectura; nunca se guarda en la entidad.
type StockTier int

const (
	OutOfStock StockTier = iota
	LowStock
	MediumStock
	InStock
)

// String devuelve el identificador del nivel (usado en JSON y filtros).
func (t StockTier) String() string {
	switch t {
	case OutOfStock:
		return "out-of-stock"
	case LowStock:
		return "low-stock"
	case MediumStock:
		return "medium-stock"
	default:
		return "in-stock"
	}
}

// Label devuelve la etiqueta legible usada en exportaciones.
func (t StockTier) Label() string {
	switch t {
	case OutOfStock:
		return "Out of Stock"
	case LowStock:
		return "Low Stock"
	case MediumStock:
		return "Medium Stock"
	default:
		return "In Stock"
	}
}

// EffectiveMinStock resuelve el umbral: el del producto si está definido, si no el global.
func EffectiveMinStock(minStock *int, defaultMinStock int) int {
	if minStock != nil {
		return *minStock
	}
	return defaultMinStock
}

// Classify implementa la clasificación en cuatro niveles (servicio de dominio puro):
//
//	qty == 0             → OutOfStock
//	0 < qty <= min       → LowStock
//	min < qty <= 2*min   → MediumStock
//	resto                → InStock
func Classify(quantity int, minStock *int, defaultMinStock int) StockTier {
	threshold := EffectiveMinStock(minStock, defaultMinStock)
	switch {
	case quantity == 0:
		return OutOfStock
	case quantity <= threshold:
		return LowStock
	case quantity <= 2*threshold:
		return MediumStock
	default:
		return InStock
	}
}
