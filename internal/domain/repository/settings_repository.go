package repository

import "github.com/jhoicas/Inventario-pos/internal/domain/entity"

// SettingsRepository puerto de la configuración de negocio (stock mínimo por defecto, moneda).
type SettingsRepository interface {
	Get() (entity.Settings, error)
	Save(settings entity.Settings) error
}
