// Package memory mantiene en memoria el estado del libro (inventario, historial de ventas
// y configuración), lo carga desde el almacén de blobs al iniciar y lo persiste después
// de cada transacción.
package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/domain/entity"
	"github.com/jhoicas/Inventario-pos/internal/domain/repository"
	"github.com/jhoicas/Inventario-pos/pkg/logger"
)

// Store estado del libro protegido por un RWMutex. Se accede solo a través de TxRunner.
type Store struct {
	mu    sync.RWMutex
	blobs repository.BlobStore
	log   *logger.Logger
	data  state
}

type state struct {
	products []*entity.Product // orden de inserción
	sales    []*entity.Sale    // más reciente primero
	settings entity.Settings
}

func (s state) clone() state {
	c := state{
		products: make([]*entity.Product, len(s.products)),
		sales:    make([]*entity.Sale, len(s.sales)),
		settings: s.settings,
	}
	for i, p := range s.products {
		c.products[i] = p.Clone()
	}
	for i, sale := range s.sales {
		c.sales[i] = sale.Clone()
	}
	return c
}

// NewStore carga el estado desde blobs. Claves ausentes, ilegibles o corruptas
// dejan la colección vacía (o la configuración por defecto) y se registran como advertencia.
func NewStore(blobs repository.BlobStore, log *logger.Logger) *Store {
	s := &Store{blobs: blobs, log: log.Component("store")}
	s.data = s.load()
	return s
}

func (s *Store) load() state {
	data := state{settings: entity.DefaultSettings()}

	var products []dto.ProductRecord
	if s.read(repository.KeyInventory, &products) {
		seen := make(map[string]bool, len(products))
		for _, rec := range products {
			p, err := rec.ToEntity()
			if err != nil {
				s.log.Warn().Err(err).Msg("producto inválido descartado al cargar")
				continue
			}
			if seen[p.ID] {
				s.log.Warn().Str("product_id", p.ID).Msg("producto duplicado descartado al cargar")
				continue
			}
			seen[p.ID] = true
			data.products = append(data.products, p)
		}
	}

	var sales []dto.SaleRecord
	if s.read(repository.KeySalesHistory, &sales) {
		for _, rec := range sales {
			sale, err := rec.ToEntity()
			if err != nil {
				s.log.Warn().Err(err).Msg("venta inválida descartada al cargar")
				continue
			}
			data.sales = append(data.sales, sale)
		}
	}

	var settings dto.SettingsRecord
	if s.read(repository.KeySettings, &settings) {
		data.settings = settings.MergeInto(data.settings)
	}

	s.log.Info().
		Int("products", len(data.products)).
		Int("sales", len(data.sales)).
		Msg("estado cargado")
	return data
}

func (s *Store) read(key string, v any) bool {
	raw, err := s.blobs.Load(key)
	if errors.Is(err, repository.ErrBlobNotFound) {
		return false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("no se pudo leer, se usan valores por defecto")
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("datos corruptos, se usan valores por defecto")
		return false
	}
	return true
}

func (s *Store) encode(key string) ([]byte, error) {
	switch key {
	case repository.KeyInventory:
		recs := make([]dto.ProductRecord, 0, len(s.data.products))
		for _, p := range s.data.products {
			recs = append(recs, dto.ProductToRecord(p))
		}
		return json.Marshal(recs)
	case repository.KeySalesHistory:
		recs := make([]dto.SaleRecord, 0, len(s.data.sales))
		for _, sale := range s.data.sales {
			recs = append(recs, dto.SaleToRecord(sale))
		}
		return json.Marshal(recs)
	case repository.KeySettings:
		return json.Marshal(dto.SettingsToRecord(s.data.settings))
	}
	return nil, fmt.Errorf("clave desconocida %q", key)
}

// flushOrder orden fijo de escritura de las claves modificadas.
var flushOrder = []string{repository.KeyInventory, repository.KeySalesHistory, repository.KeySettings}

// flush persiste las claves marcadas. Si una escritura falla, reescribe con snapshot
// las que ya se habían guardado para no dejar blobs mezclados. Requiere el lock de escritura.
func (s *Store) flush(dirty map[string]bool, snapshot state) error {
	var written []string
	for _, key := range flushOrder {
		if !dirty[key] {
			continue
		}
		raw, err := s.encode(key)
		if err == nil {
			err = s.blobs.Save(key, raw)
		}
		if err != nil {
			s.restoreBlobs(written, snapshot)
			return fmt.Errorf("guardar %s: %w", key, err)
		}
		written = append(written, key)
	}
	return nil
}

func (s *Store) restoreBlobs(keys []string, snapshot state) {
	current := s.data
	s.data = snapshot
	defer func() { s.data = current }()
	for _, key := range keys {
		raw, err := s.encode(key)
		if err == nil {
			err = s.blobs.Save(key, raw)
		}
		if err != nil {
			s.log.Error().Err(err).Str("key", key).Msg("no se pudo restaurar el blob tras un fallo de persistencia")
		}
	}
}

// Reset vacía el estado y borra los blobs (configuración por defecto).
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted []string
	for _, key := range flushOrder {
		err := s.blobs.Delete(key)
		if errors.Is(err, repository.ErrBlobNotFound) {
			continue
		}
		if err != nil {
			// el estado en memoria sigue intacto; se reescriben los blobs ya borrados
			s.restoreBlobs(deleted, s.data)
			return fmt.Errorf("borrar %s: %w", key, err)
		}
		deleted = append(deleted, key)
	}
	s.data = state{settings: entity.DefaultSettings()}
	s.log.Warn().Msg("todos los datos fueron borrados")
	return nil
}
