package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Quantity debe ser entero >= 0; MinStock nil usa el mínimo por defecto de la configuración.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Price    decimal.Decimal `json:"price"`
	MinStock *int            `json:"min_stock"`
}

// UpdateProductRequest actualización parcial: solo se aplican los campos presentes.
// ResetMinStock vuelve a usar el mínimo por defecto de la configuración.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category"`
	Quantity      *decimal.Decimal `json:"quantity"`
	Unit          *string          `json:"unit"`
	Price         *decimal.Decimal `json:"price"`
	MinStock      *int             `json:"min_stock"`
	ResetMinStock bool             `json:"reset_min_stock"`
}

// ProductResponse salida de un producto, con su estado de stock calculado.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Quantity          int             `json:"quantity"`
	Unit              string          `json:"unit"`
	Price             decimal.Decimal `json:"price"`
	MinStock          *int            `json:"min_stock"`
	EffectiveMinStock int             `json:"effective_min_stock"`
	Value             decimal.Decimal `json:"value"`  // Quantity * Price
	Status            string          `json:"status"` // in-stock | medium-stock | low-stock | out-of-stock
	StatusLabel       string          `json:"status_label"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductQuery filtros y orden del listado de inventario.
type ProductQuery struct {
	Search   string `query:"search"`   // subcadena en nombre o categoría (sin mayúsculas)
	Category string `query:"category"` // igualdad exacta; vacío = todas
	Stock    string `query:"stock"`    // in-stock | low-stock | out-of-stock; vacío = todos
	SortBy   string `query:"sort_by"`  // name | category | quantity | price | value
	Order    string `query:"order"`    // asc | desc
}

// ProductListResponse listado filtrado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// BulkDeleteRequest ids a eliminar en una sola operación.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BulkDeleteResponse cantidad eliminada.
type BulkDeleteResponse struct {
	Deleted int `json:"deleted"`
}

// CategoriesResponse categorías distintas en orden alfabético.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// StockAlertResponse productos agotados y con stock bajo.
type StockAlertResponse struct {
	Notifications bool              `json:"notifications"`
	OutOfStock    []ProductResponse `json:"out_of_stock"`
	LowStock      []ProductResponse `json:"low_stock"`
}
