// Package backup exporta, restaura y borra el estado completo del libro.
package backup

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/application/ports"
	"github.com/jhoicas/Inventario-pos/internal/domain"
	"github.com/jhoicas/Inventario-pos/internal/domain/entity"
	"github.com/jhoicas/Inventario-pos/internal/domain/repository"
	"github.com/jhoicas/Inventario-pos/pkg/logger"
)

// ClearAllConfirmation texto que debe enviarse para borrar todos los datos.
const ClearAllConfirmation = "DELETE ALL"

// Resetter vacía el estado y borra lo persistido.
type Resetter interface {
	Reset() error
}

// DataUseCase respaldo completo, restauración y borrado total.
type DataUseCase struct {
	tx    ports.TxRunner
	reset Resetter
	clock ports.Clock
	log   *logger.Logger
}

// NewDataUseCase construye el caso de uso.
func NewDataUseCase(tx ports.TxRunner, reset Resetter, clock ports.Clock, log *logger.Logger) *DataUseCase {
	return &DataUseCase{tx: tx, reset: reset, clock: clock, log: log.Component("backup")}
}

// Backup arma el respaldo con inventario, historial y configuración.
func (uc *DataUseCase) Backup(ctx context.Context) (*dto.BackupBundle, error) {
	out := &dto.BackupBundle{
		Inventory:    []dto.ProductRecord{},
		SalesHistory: []dto.SaleRecord{},
		Timestamp:    uc.clock.Now(),
		Version:      dto.BackupVersion,
	}
	err := uc.tx.View(ctx, func(products repository.ProductRepository, sales repository.SaleRepository, cfg repository.SettingsRepository) error {
		plist, err := products.List()
		if err != nil {
			return err
		}
		for _, p := range plist {
			out.Inventory = append(out.Inventory, dto.ProductToRecord(p))
		}
		slist, err := sales.List()
		if err != nil {
			return err
		}
		for _, s := range slist {
			out.SalesHistory = append(out.SalesHistory, dto.SaleToRecord(s))
		}
		settings, err := cfg.Get()
		if err != nil {
			return err
		}
		rec := dto.SettingsToRecord(settings)
		out.Settings = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Restore reemplaza inventario e historial por los del respaldo y combina la configuración
// (solo los campos presentes). Un respaldo sin inventory o salesHistory se rechaza.
func (uc *DataUseCase) Restore(ctx context.Context, bundle dto.BackupBundle) (*dto.RestoreResponse, error) {
	if bundle.Inventory == nil || bundle.SalesHistory == nil {
		return nil, fmt.Errorf("%w: el respaldo debe incluir inventory y salesHistory", domain.ErrInvalidInput)
	}

	products := make([]*entity.Product, 0, len(bundle.Inventory))
	seen := make(map[string]bool, len(bundle.Inventory))
	for _, rec := range bundle.Inventory {
		p, err := rec.ToEntity()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: producto duplicado %s", domain.ErrInvalidInput, p.ID)
		}
		seen[p.ID] = true
		products = append(products, p)
	}
	sales := make([]*entity.Sale, 0, len(bundle.SalesHistory))
	for _, rec := range bundle.SalesHistory {
		s, err := rec.ToEntity()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		sales = append(sales, s)
	}

	err := uc.tx.Run(ctx, func(prepo repository.ProductRepository, srepo repository.SaleRepository, cfg repository.SettingsRepository) error {
		if err := prepo.ReplaceAll(products); err != nil {
			return err
		}
		if err := srepo.ReplaceAll(sales); err != nil {
			return err
		}
		if bundle.Settings == nil {
			return nil
		}
		current, err := cfg.Get()
		if err != nil {
			return err
		}
		return cfg.Save(bundle.Settings.MergeInto(current))
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int("products", len(products)).
		Int("sales", len(sales)).
		Str("version", bundle.Version).
		Msg("respaldo restaurado")
	return &dto.RestoreResponse{Products: len(products), Sales: len(sales)}, nil
}

// ClearAll borra inventario, historial y configuración. confirm debe ser "DELETE ALL".
func (uc *DataUseCase) ClearAll(ctx context.Context, confirm string) error {
	if confirm != ClearAllConfirmation {
		return fmt.Errorf("%w: confirmación requerida %q", domain.ErrInvalidInput, ClearAllConfirmation)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return uc.reset.Reset()
}
