// Package testutil piezas compartidas por los tests de casos de uso y handlers:
// reloj fijo, ids secuenciales y un libro en memoria sobre afero.MemMapFs.
package testutil

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/jhoicas/Inventario-pos/internal/infrastructure/filestore"
	"github.com/jhoicas/Inventario-pos/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-pos/pkg/logger"
)

// FixedClock reloj controlable.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock reloj detenido en now (su zona horaria es la de los reportes).
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FixedClock) Location() *time.Location {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.Location()
}

// Advance mueve el reloj.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set fija el reloj.
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// SequenceIDs genera prefix-1, prefix-2, ...
type SequenceIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func NewSequenceIDs(prefix string) *SequenceIDs {
	return &SequenceIDs{prefix: prefix}
}

func (g *SequenceIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

// Ledger store en memoria persistido en un afero.MemMapFs.
type Ledger struct {
	Fs     afero.Fs
	Blobs  *filestore.Store
	Store  *memory.Store
	Runner *memory.TxRunner
}

// NewLedger arma un libro vacío listo para usar.
func NewLedger(t testing.TB) *Ledger {
	t.Helper()
	fs := afero.NewMemMapFs()
	blobs, err := filestore.New(fs, "/data")
	if err != nil {
		t.Fatalf("filestore: %v", err)
	}
	store := memory.NewStore(blobs, logger.Nop())
	return &Ledger{Fs: fs, Blobs: blobs, Store: store, Runner: memory.NewTxRunner(store)}
}

// Reopen recarga el estado desde los blobs persistidos (simula reiniciar el proceso).
func (l *Ledger) Reopen() *Ledger {
	store := memory.NewStore(l.Blobs, logger.Nop())
	return &Ledger{Fs: l.Fs, Blobs: l.Blobs, Store: store, Runner: memory.NewTxRunner(store)}
}
