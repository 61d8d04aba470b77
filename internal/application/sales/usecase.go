// Package sales registra ventas contra el stock y las anula restaurando el inventario.
// Verificar stock, descontarlo y guardar la venta ocurre dentro de una sola transacción.
package sales

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/application/ports"
	"github.com/jhoicas/Inventario-pos/internal/domain"
	"github.com/jhoicas/Inventario-pos/internal/domain/entity"
	"github.com/jhoicas/Inventario-pos/internal/domain/inventory"
	"github.com/jhoicas/Inventario-pos/internal/domain/pricing"
	"github.com/jhoicas/Inventario-pos/internal/domain/report"
	"github.com/jhoicas/Inventario-pos/internal/domain/repository"
	"github.com/jhoicas/Inventario-pos/pkg/logger"
)

// SaleUseCase motor de ventas: vista previa, registro, anulación e historial.
type SaleUseCase struct {
	tx    ports.TxRunner
	clock ports.Clock
	ids   ports.IDGenerator
	log   *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(tx ports.TxRunner, clock ports.Clock, ids ports.IDGenerator, log *logger.Logger) *SaleUseCase {
	return &SaleUseCase{tx: tx, clock: clock, ids: ids, log: log.Component("sales")}
}

// saleQuantity valida que la cantidad sea un entero positivo.
func saleQuantity(d decimal.Decimal) (int, error) {
	qty, err := inventory.WholeQuantity(d)
	if err != nil {
		return 0, err
	}
	if qty <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	return qty, nil
}

func quoteInput(product *entity.Product, qty int, in dto.SaleRequest) pricing.QuoteInput {
	return pricing.QuoteInput{
		UnitPrice:     product.Price,
		Quantity:      qty,
		DiscountType:  in.DiscountType,
		DiscountValue: in.DiscountValue,
		RoundingMode:  in.RoundingMode,
	}
}

// Preview calcula la venta sin modificar nada. InsufficientStock indica que Commit fallaría
// con ErrInsufficientStock.
func (uc *SaleUseCase) Preview(ctx context.Context, in dto.SaleRequest) (*dto.SalePreviewResponse, error) {
	qty, err := saleQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}
	var out *dto.SalePreviewResponse
	err = uc.tx.View(ctx, func(products repository.ProductRepository, _ repository.SaleRepository, _ repository.SettingsRepository) error {
		product, err := products.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		q, err := pricing.ComputeQuote(quoteInput(product, qty, in))
		if err != nil {
			return err
		}
		out = &dto.SalePreviewResponse{
			ProductID:         product.ID,
			Product:           product.Name,
			Quantity:          qty,
			Available:         product.Quantity,
			UnitPrice:         q.UnitPrice,
			Subtotal:          q.Subtotal,
			DiscountType:      q.DiscountType,
			DiscountValue:     q.DiscountValue,
			DiscountApplied:   q.Discount,
			RawTotal:          q.RawTotal,
			Total:             q.Total,
			InsufficientStock: qty > product.Quantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Commit registra la venta: verifica stock, lo descuenta y antepone la venta al historial
// en una sola transacción. Ante cualquier error el inventario queda intacto.
func (uc *SaleUseCase) Commit(ctx context.Context, in dto.SaleRequest) (*dto.SaleResponse, error) {
	qty, err := saleQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()

	var sale *entity.Sale
	var remaining int
	err = uc.tx.Run(ctx, func(products repository.ProductRepository, sales repository.SaleRepository, _ repository.SettingsRepository) error {
		product, err := products.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		q, err := pricing.ComputeQuote(quoteInput(product, qty, in))
		if err != nil {
			return err
		}
		if qty > product.Quantity {
			return fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, product.Quantity, qty)
		}

		product.Quantity -= qty
		product.UpdatedAt = now
		if err := products.Update(product); err != nil {
			return err
		}
		remaining = product.Quantity

		sale = &entity.Sale{
			ID:              uc.ids.NewID(),
			Date:            now,
			ProductID:       product.ID,
			Product:         product.Name,
			Quantity:        qty,
			UnitPrice:       q.UnitPrice,
			Subtotal:        q.Subtotal,
			DiscountType:    q.DiscountType,
			DiscountValue:   q.DiscountValue,
			DiscountApplied: q.Discount,
			Total:           q.Total,
		}
		return sales.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("product_id", sale.ProductID).
		Int("qty", sale.Quantity).
		Str("total", sale.Total.StringFixed(2)).
		Int("remaining", remaining).
		Msg("venta registrada")
	return toSaleResponse(sale), nil
}

// Reverse anula una venta: devuelve las unidades al producto si todavía existe y elimina
// la venta del historial.
func (uc *SaleUseCase) Reverse(ctx context.Context, saleID string) (*dto.ReverseSaleResponse, error) {
	now := uc.clock.Now()
	out := &dto.ReverseSaleResponse{}
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, sales repository.SaleRepository, _ repository.SettingsRepository) error {
		sale, err := sales.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrSaleNotFound
		}
		if sale.Quantity <= 0 {
			return fmt.Errorf("%w: venta %s con cantidad %d", domain.ErrInvalidQuantity, saleID, sale.Quantity)
		}

		product, err := products.GetByID(sale.ProductID)
		if err != nil {
			return err
		}
		if product != nil {
			product.Quantity += sale.Quantity
			product.UpdatedAt = now
			if err := products.Update(product); err != nil {
				return err
			}
			out.StockRestored = true
			qty := product.Quantity
			out.ProductQuantity = &qty
		}

		out.Sale = *toSaleResponse(sale)
		return sales.Delete(saleID)
	})
	if err != nil {
		return nil, err
	}

	ev := uc.log.Info().Str("sale_id", saleID).Bool("stock_restored", out.StockRestored)
	if !out.StockRestored {
		ev = ev.Str("product_id", out.Sale.ProductID)
	}
	ev.Msg("venta anulada")
	return out, nil
}

// History historial del más reciente al más antiguo; limit <= 0 devuelve todo.
func (uc *SaleUseCase) History(ctx context.Context, limit int) (*dto.SaleListResponse, error) {
	list, err := uc.list(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return toSaleList(list), nil
}

// Today ventas con fecha en [inicio del día, inicio del día siguiente) según el reloj.
func (uc *SaleUseCase) Today(ctx context.Context) (*dto.SaleListResponse, error) {
	list, err := uc.list(ctx)
	if err != nil {
		return nil, err
	}
	start := report.StartOfDay(uc.clock.Now().In(uc.clock.Location()))
	end := start.AddDate(0, 0, 1)
	today := make([]*entity.Sale, 0, len(list))
	for _, s := range list {
		if !s.Date.Before(start) && s.Date.Before(end) {
			today = append(today, s)
		}
	}
	return toSaleList(today), nil
}

func (uc *SaleUseCase) list(ctx context.Context) ([]*entity.Sale, error) {
	var list []*entity.Sale
	err := uc.tx.View(ctx, func(_ repository.ProductRepository, sales repository.SaleRepository, _ repository.SettingsRepository) error {
		var err error
		list, err = sales.List()
		return err
	})
	return list, err
}

func toSaleList(list []*entity.Sale) *dto.SaleListResponse {
	out := &dto.SaleListResponse{Items: make([]dto.SaleResponse, 0, len(list)), Revenue: decimal.Zero}
	for _, s := range list {
		out.Items = append(out.Items, *toSaleResponse(s))
		out.Revenue = out.Revenue.Add(s.Total)
	}
	out.Count = len(out.Items)
	return out
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:              s.ID,
		Date:            s.Date,
		ProductID:       s.ProductID,
		Product:         s.Product,
		Quantity:        s.Quantity,
		UnitPrice:       s.UnitPrice,
		Subtotal:        s.Subtotal,
		DiscountType:    s.DiscountType,
		DiscountValue:   s.DiscountValue,
		DiscountApplied: s.DiscountApplied,
		Total:           s.Total,
	}
}
