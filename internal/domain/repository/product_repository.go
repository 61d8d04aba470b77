package repository

import "github.com/jhoicas/Inventario-pos/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// La colección conserva el orden de inserción. GetByID y FindByName devuelven (nil, nil)
// cuando no existe el producto.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// FindByName busca por nombre sin distinguir mayúsculas.
	FindByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List() ([]*entity.Product, error)
	ReplaceAll(products []*entity.Product) error
}
