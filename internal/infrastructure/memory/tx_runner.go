package memory

import (
	"context"
	"errors"

	"github.com/jhoicas/Inventario-pos/internal/application/ports"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// ErrReadOnly escritura dentro de View.
var ErrReadOnly = errors.New("transacción de solo lectura")

// ErrTxClosed uso de un repositorio fuera de su callback.
var ErrTxClosed = errors.New("transacción cerrada")

// TxRunner ejecuta callbacks con repositorios atados al estado del Store.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// tx estado compartido por los repositorios de una transacción.
type tx struct {
	data     *state
	readOnly bool
	closed   bool
	dirty    map[string]bool
}

func (t *tx) writable(key string) error {
	if t.closed {
		return ErrTxClosed
	}
	if t.readOnly {
		return ErrReadOnly
	}
	t.dirty[key] = true
	return nil
}

func (t *tx) readable() error {
	if t.closed {
		return ErrTxClosed
	}
	return nil
}

// Run toma el lock de escritura, ejecuta fn y persiste las claves modificadas.
// Si fn falla o entra en pánico, o la persistencia falla, restaura el estado previo.
func (r *TxRunner) Run(ctx context.Context, fn ports.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	t := &tx{data: &s.data, dirty: make(map[string]bool)}
	defer func() { t.closed = true }()
	defer func() {
		if p := recover(); p != nil {
			s.data = snapshot
			s.log.Error().Interface("panic", p).Msg("transacción revertida: pánico en el callback")
			panic(p)
		}
	}()

	if err := fn(&productRepo{tx: t}, &saleRepo{tx: t}, &settingsRepo{tx: t}); err != nil {
		s.data = snapshot
		return err
	}
	if len(t.dirty) == 0 {
		return nil
	}
	if err := s.flush(t.dirty, snapshot); err != nil {
		s.data = snapshot
		s.log.Error().Err(err).Msg("transacción revertida: fallo al persistir")
		return err
	}
	return nil
}

// View ejecuta fn bajo el lock de lectura; los repositorios devuelven copias y rechazan escrituras.
func (r *TxRunner) View(ctx context.Context, fn ports.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := &tx{data: &s.data, readOnly: true}
	defer func() { t.closed = true }()
	return fn(&productRepo{tx: t}, &saleRepo{tx: t}, &settingsRepo{tx: t})
}
