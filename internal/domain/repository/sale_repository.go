package repository

import "github.com/jhoicas/Inventario-pos/internal/domain/entity"

// SaleRepository puerto del historial de ventas. El historial se guarda del más reciente
// al más antiguo: Create antepone la venta.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	Delete(id string) error
	List() ([]*entity.Sale, error)
	ReplaceAll(sales []*entity.Sale) error
}
