package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/application/ports"
	"github.com/jhoicas/Inventario-pos/internal/domain"
	"github.com/jhoicas/Inventario-pos/internal/domain/entity"
	"github.com/jhoicas/Inventario-pos/internal/domain/inventory"
	"github.com/jhoicas/Inventario-pos/internal/domain/repository"
	"github.com/jhoicas/Inventario-pos/pkg/money"
)

// ProductUseCase casos de uso del inventario: alta, edición, baja y consultas.
// El stock solo cambia aquí (edición manual) o a través de ventas y anulaciones.
type ProductUseCase struct {
	tx    ports.TxRunner
	clock ports.Clock
	ids   ports.IDGenerator

	enforceUniqueOnRename bool
}

// NewProductUseCase construye el caso de uso. enforceUniqueOnRename aplica la regla de
// nombre único también al renombrar (en la creación siempre se aplica).
func NewProductUseCase(tx ports.TxRunner, clock ports.Clock, ids ports.IDGenerator, enforceUniqueOnRename bool) *ProductUseCase {
	return &ProductUseCase{tx: tx, clock: clock, ids: ids, enforceUniqueOnRename: enforceUniqueOnRename}
}

// Create crea un producto. Categoría y unidad vacías toman sus valores por defecto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	qty, err := stockQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}
	price, err := validPrice(in.Price)
	if err != nil {
		return nil, err
	}
	if in.MinStock != nil && *in.MinStock < 0 {
		return nil, fmt.Errorf("%w: stock mínimo negativo", domain.ErrInvalidInput)
	}

	now := uc.clock.Now()
	product := &entity.Product{
		ID:        uc.ids.NewID(),
		Name:      name,
		Category:  orDefault(in.Category, entity.DefaultCategory),
		Quantity:  qty,
		Unit:      orDefault(in.Unit, entity.DefaultUnit),
		Price:     price,
		MinStock:  copyInt(in.MinStock),
		CreatedAt: now,
		UpdatedAt: now,
	}

	var settings entity.Settings
	err = uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.SaleRepository, cfg repository.SettingsRepository) error {
		existing, err := products.FindByName(name)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateName, existing.Name)
		}
		if settings, err = cfg.Get(); err != nil {
			return err
		}
		return products.Create(product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, settings.DefaultMinStock), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.View(ctx, func(products repository.ProductRepository, _ repository.SaleRepository, cfg repository.SettingsRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		settings, err := cfg.Get()
		if err != nil {
			return err
		}
		out = toProductResponse(product, settings.DefaultMinStock)
		return nil
	})
	return out, err
}

// Update aplica los campos presentes. Conserva ID y CreatedAt y renueva UpdatedAt.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.SaleRepository, cfg repository.SettingsRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
			}
			if uc.enforceUniqueOnRename && !strings.EqualFold(name, product.Name) {
				existing, err := products.FindByName(name)
				if err != nil {
					return err
				}
				if existing != nil && existing.ID != product.ID {
					return fmt.Errorf("%w: %s", domain.ErrDuplicateName, existing.Name)
				}
			}
			product.Name = name
		}
		if in.Category != nil {
			product.Category = orDefault(*in.Category, entity.DefaultCategory)
		}
		if in.Unit != nil {
			product.Unit = orDefault(*in.Unit, entity.DefaultUnit)
		}
		if in.Quantity != nil {
			qty, err := stockQuantity(*in.Quantity)
			if err != nil {
				return err
			}
			product.Quantity = qty
		}
		if in.Price != nil {
			price, err := validPrice(*in.Price)
			if err != nil {
				return err
			}
			product.Price = price
		}
		switch {
		case in.ResetMinStock:
			product.MinStock = nil
		case in.MinStock != nil:
			if *in.MinStock < 0 {
				return fmt.Errorf("%w: stock mínimo negativo", domain.ErrInvalidInput)
			}
			product.MinStock = copyInt(in.MinStock)
		}
		product.UpdatedAt = uc.clock.Now()

		if err := products.Update(product); err != nil {
			return err
		}
		settings, err := cfg.Get()
		if err != nil {
			return err
		}
		out = toProductResponse(product, settings.DefaultMinStock)
		return nil
	})
	return out, err
}

// Delete elimina un producto. Las ventas que lo referencian se conservan.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.SaleRepository, _ repository.SettingsRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		return products.Delete(id)
	})
}

// BulkDelete elimina varios productos en una sola transacción. Resuelve la posición de
// cada id y borra de la última a la primera; un id desconocido cancela todo el lote.
func (uc *ProductUseCase) BulkDelete(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	deleted := 0
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.SaleRepository, _ repository.SettingsRepository) error {
		list, err := products.List()
		if err != nil {
			return err
		}
		position := make(map[string]int, len(list))
		for i, p := range list {
			position[p.ID] = i
		}

		targets := make([]int, 0, len(ids))
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			i, ok := position[id]
			if !ok {
				return fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
			}
			targets = append(targets, i)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(targets)))

		for _, i := range targets {
			if err := products.Delete(list[i].ID); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// List aplica búsqueda, filtro de categoría y de stock, y ordena de forma estable.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductQuery) (*dto.ProductListResponse, error) {
	filter := inventory.StockFilter(q.Stock)
	if !filter.Valid() {
		return nil, fmt.Errorf("%w: filtro de stock %q", domain.ErrInvalidInput, q.Stock)
	}
	less, err := productOrder(q.SortBy, q.Order)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))

	var (
		matched  []*entity.Product
		settings entity.Settings
	)
	err = uc.tx.View(ctx, func(products repository.ProductRepository, _ repository.SaleRepository, cfg repository.SettingsRepository) error {
		list, err := products.List()
		if err != nil {
			return err
		}
		if settings, err = cfg.Get(); err != nil {
			return err
		}
		for _, p := range list {
			if search != "" &&
				!strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.Category), search) {
				continue
			}
			if q.Category != "" && p.Category != q.Category {
				continue
			}
			if !filter.Matches(p.Quantity, p.MinStock, settings.DefaultMinStock) {
				continue
			}
			matched = append(matched, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if less != nil {
		sort.SliceStable(matched, func(i, j int) bool { return less(matched[i], matched[j]) })
	}
	items := make([]dto.ProductResponse, 0, len(matched))
	for _, p := range matched {
		items = append(items, *toProductResponse(p, settings.DefaultMinStock))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Categories categorías distintas del inventario, en orden alfabético.
func (uc *ProductUseCase) Categories(ctx context.Context) (*dto.CategoriesResponse, error) {
	set := make(map[string]bool)
	err := uc.tx.View(ctx, func(products repository.ProductRepository, _ repository.SaleRepository, _ repository.SettingsRepository) error {
		list, err := products.List()
		if err != nil {
			return err
		}
		for _, p := range list {
			set[p.Category] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return &dto.CategoriesResponse{Categories: out}, nil
}

// Sellable productos con stock disponible (selector de la pantalla de ventas).
func (uc *ProductUseCase) Sellable(ctx context.Context) (*dto.ProductListResponse, error) {
	all, err := uc.List(ctx, dto.ProductQuery{SortBy: "name"})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(all.Items))
	for _, p := range all.Items {
		if p.Quantity > 0 {
			items = append(items, p)
		}
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// LowStockAlert productos agotados y con stock bajo según su umbral efectivo.
func (uc *ProductUseCase) LowStockAlert(ctx context.Context) (*dto.StockAlertResponse, error) {
	out := &dto.StockAlertResponse{
		OutOfStock: []dto.ProductResponse{},
		LowStock:   []dto.ProductResponse{},
	}
	err := uc.tx.View(ctx, func(products repository.ProductRepository, _ repository.SaleRepository, cfg repository.SettingsRepository) error {
		list, err := products.List()
		if err != nil {
			return err
		}
		settings, err := cfg.Get()
		if err != nil {
			return err
		}
		out.Notifications = settings.Notifications
		for _, p := range list {
			switch inventory.Classify(p.Quantity, p.MinStock, settings.DefaultMinStock) {
			case inventory.OutOfStock:
				out.OutOfStock = append(out.OutOfStock, *toProductResponse(p, settings.DefaultMinStock))
			case inventory.LowStock:
				out.LowStock = append(out.LowStock, *toProductResponse(p, settings.DefaultMinStock))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func productOrder(sortBy, order string) (func(a, b *entity.Product) bool, error) {
	var less func(a, b *entity.Product) bool
	switch sortBy {
	case "":
		return nil, nil
	case "name":
		less = func(a, b *entity.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "category":
		less = func(a, b *entity.Product) bool { return strings.ToLower(a.Category) < strings.ToLower(b.Category) }
	case "quantity":
		less = func(a, b *entity.Product) bool { return a.Quantity < b.Quantity }
	case "price":
		less = func(a, b *entity.Product) bool { return a.Price.LessThan(b.Price) }
	case "value":
		less = func(a, b *entity.Product) bool { return a.Value().LessThan(b.Value()) }
	default:
		return nil, fmt.Errorf("%w: orden por %q", domain.ErrInvalidInput, sortBy)
	}
	switch strings.ToLower(order) {
	case "", "asc":
		return less, nil
	case "desc":
		return func(a, b *entity.Product) bool { return less(b, a) }, nil
	}
	return nil, fmt.Errorf("%w: dirección %q", domain.ErrInvalidInput, order)
}

func stockQuantity(d decimal.Decimal) (int, error) {
	qty, err := inventory.WholeQuantity(d)
	if err != nil || qty < 0 {
		return 0, fmt.Errorf("%w: la cantidad debe ser un entero >= 0", domain.ErrInvalidInput)
	}
	return qty, nil
}

func validPrice(d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
	}
	return money.Round2(d), nil
}

func orDefault(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func toProductResponse(p *entity.Product, defaultMinStock int) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	tier := inventory.Classify(p.Quantity, p.MinStock, defaultMinStock)
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		Quantity:          p.Quantity,
		Unit:              p.Unit,
		Price:             p.Price,
		MinStock:          copyInt(p.MinStock),
		EffectiveMinStock: inventory.EffectiveMinStock(p.MinStock, defaultMinStock),
		Value:             money.Round2(p.Value()),
		Status:            tier.String(),
		StatusLabel:       tier.Label(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
