package memory

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-pos/internal/domain"
	"github.com/jhoicas/Inventario-pos/internal/domain/entity"
	"github.com/jhoicas/Inventario-pos/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*productRepo)(nil)
	_ repository.SaleRepository     = (*saleRepo)(nil)
	_ repository.SettingsRepository = (*settingsRepo)(nil)
)

// ── Productos ───────────────────────────────────────────────────────────────

type productRepo struct {
	tx *tx
}

func (r *productRepo) indexOf(id string) int {
	for i, p := range r.tx.data.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *productRepo) Create(product *entity.Product) error {
	if err := r.tx.writable(repository.KeyInventory); err != nil {
		return err
	}
	if r.indexOf(product.ID) >= 0 {
		return fmt.Errorf("%w: id de producto duplicado %s", domain.ErrInvalidInput, product.ID)
	}
	r.tx.data.products = append(r.tx.data.products, product.Clone())
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	if err := r.tx.readable(); err != nil {
		return nil, err
	}
	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	return r.tx.data.products[i].Clone(), nil
}

func (r *productRepo) FindByName(name string) (*entity.Product, error) {
	if err := r.tx.readable(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	for _, p := range r.tx.data.products {
		if strings.EqualFold(strings.TrimSpace(p.Name), name) {
			return p.Clone(), nil
		}
	}
	return nil, nil
}

func (r *productRepo) Update(product *entity.Product) error {
	if err := r.tx.writable(repository.KeyInventory); err != nil {
		return err
	}
	i := r.indexOf(product.ID)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	r.tx.data.products[i] = product.Clone()
	return nil
}

func (r *productRepo) Delete(id string) error {
	if err := r.tx.writable(repository.KeyInventory); err != nil {
		return err
	}
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	products := r.tx.data.products
	r.tx.data.products = append(products[:i:i], products[i+1:]...)
	return nil
}

func (r *productRepo) List() ([]*entity.Product, error) {
	if err := r.tx.readable(); err != nil {
		return nil, err
	}
	out := make([]*entity.Product, len(r.tx.data.products))
	for i, p := range r.tx.data.products {
		out[i] = p.Clone()
	}
	return out, nil
}

func (r *productRepo) ReplaceAll(products []*entity.Product) error {
	if err := r.tx.writable(repository.KeyInventory); err != nil {
		return err
	}
	next := make([]*entity.Product, len(products))
	for i, p := range products {
		next[i] = p.Clone()
	}
	r.tx.data.products = next
	return nil
}

// ── Ventas ──────────────────────────────────────────────────────────────────

type saleRepo struct {
	tx *tx
}

func (r *saleRepo) indexOf(id string) int {
	for i, s := range r.tx.data.sales {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Create antepone la venta (historial del más reciente al más antiguo).
func (r *saleRepo) Create(sale *entity.Sale) error {
	if err := r.tx.writable(repository.KeySalesHistory); err != nil {
		return err
	}
	sales := make([]*entity.Sale, 0, len(r.tx.data.sales)+1)
	sales = append(sales, sale.Clone())
	r.tx.data.sales = append(sales, r.tx.data.sales...)
	return nil
}

func (r *saleRepo) GetByID(id string) (*entity.Sale, error) {
	if err := r.tx.readable(); err != nil {
		return nil, err
	}
	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	return r.tx.data.sales[i].Clone(), nil
}

func (r *saleRepo) Delete(id string) error {
	if err := r.tx.writable(repository.KeySalesHistory); err != nil {
		return err
	}
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrSaleNotFound
	}
	sales := r.tx.data.sales
	r.tx.data.sales = append(sales[:i:i], sales[i+1:]...)
	return nil
}

func (r *saleRepo) List() ([]*entity.Sale, error) {
	if err := r.tx.readable(); err != nil {
		return nil, err
	}
	out := make([]*entity.Sale, len(r.tx.data.sales))
	for i, s := range r.tx.data.sales {
		out[i] = s.Clone()
	}
	return out, nil
}

func (r *saleRepo) ReplaceAll(sales []*entity.Sale) error {
	if err := r.tx.writable(repository.KeySalesHistory); err != nil {
		return err
	}
	next := make([]*entity.Sale, len(sales))
	for i, s := range sales {
		next[i] = s.Clone()
	}
	r.tx.data.sales = next
	return nil
}

// ── Configuración ───────────────────────────────────────────────────────────

type settingsRepo struct {
	tx *tx
}

func (r *settingsRepo) Get() (entity.Settings, error) {
	if err := r.tx.readable(); err != nil {
		return entity.Settings{}, err
	}
	return r.tx.data.settings, nil
}

func (r *settingsRepo) Save(settings entity.Settings) error {
	if err := r.tx.writable(repository.KeySettings); err != nil {
		return err
	}
	r.tx.data.settings = settings
	return nil
}
