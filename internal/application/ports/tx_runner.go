package ports

import (
	"context"

	"github.com/jhoicas/Inventario-pos/internal/domain/repository"
)

// TxFunc callback con los repositorios atados a la transacción.
type TxFunc func(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	settings repository.SettingsRepository,
) error

// TxRunner ejecuta una función como una unidad atómica sobre inventario, ventas y configuración.
// Run: si fn devuelve error, o si falla la persistencia, el estado queda como antes de la llamada.
// View: lectura consistente; los repositorios rechazan escrituras.
type TxRunner interface {
	Run(ctx context.Context, fn TxFunc) error
	View(ctx context.Context, fn TxFunc) error
}
