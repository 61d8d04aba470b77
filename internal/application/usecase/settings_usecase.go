package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/application/ports"
	"github.com/jhoicas/Inventario-pos/internal/domain"
	"github.com/jhoicas/Inventario-pos/internal/domain/entity"
	"github.com/jhoicas/Inventario-pos/internal/domain/repository"
	"github.com/jhoicas/Inventario-pos/pkg/money"
)

// SettingsUseCase lectura y actualización de la configuración de negocio.
type SettingsUseCase struct {
	tx ports.TxRunner
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(tx ports.TxRunner) *SettingsUseCase {
	return &SettingsUseCase{tx: tx}
}

// Get devuelve la configuración vigente.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsDTO, error) {
	var s entity.Settings
	err := uc.tx.View(ctx, func(_ repository.ProductRepository, _ repository.SaleRepository, cfg repository.SettingsRepository) error {
		var err error
		s, err = cfg.Get()
		return err
	})
	if err != nil {
		return nil, err
	}
	return toSettingsDTO(s), nil
}

// Update aplica los campos presentes. El stock mínimo por defecto debe ser positivo y la
// moneda un código ISO 4217.
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.UpdateSettingsRequest) (*dto.SettingsDTO, error) {
	if in.DefaultMinStock != nil && *in.DefaultMinStock <= 0 {
		return nil, fmt.Errorf("%w: el stock mínimo por defecto debe ser positivo", domain.ErrInvalidInput)
	}
	var currency string
	if in.Currency != nil {
		currency = strings.ToUpper(strings.TrimSpace(*in.Currency))
		if money.NormalizeCurrency(currency) != currency {
			return nil, fmt.Errorf("%w: moneda %q", domain.ErrInvalidInput, *in.Currency)
		}
	}

	var out entity.Settings
	err := uc.tx.Run(ctx, func(_ repository.ProductRepository, _ repository.SaleRepository, cfg repository.SettingsRepository) error {
		s, err := cfg.Get()
		if err != nil {
			return err
		}
		if in.DefaultMinStock != nil {
			s.DefaultMinStock = *in.DefaultMinStock
		}
		if in.Currency != nil {
			s.Currency = currency
		}
		if in.Notifications != nil {
			s.Notifications = *in.Notifications
		}
		out = s
		return cfg.Save(s)
	})
	if err != nil {
		return nil, err
	}
	return toSettingsDTO(out), nil
}

func toSettingsDTO(s entity.Settings) *dto.SettingsDTO {
	return &dto.SettingsDTO{
		DefaultMinStock: s.DefaultMinStock,
		Currency:        s.Currency,
		Notifications:   s.Notifications,
	}
}
