// Package filestore implementa repository.BlobStore con un archivo JSON por clave
// sobre afero.Fs (disco en producción, memoria en tests).
package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"

	"github.com/jhoicas/Inventario-pos/internal/domain/repository"
)

var _ repository.BlobStore = (*Store)(nil)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Store guarda cada blob en <dir>/<key>.json.
type Store struct {
	fs  afero.Fs
	dir string
}

// New crea el directorio si no existe.
func New(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Store{fs: fs, dir: dir}, nil
}

// NewOS atajo sobre el sistema de archivos real.
func NewOS(dir string) (*Store, error) {
	return New(afero.NewOsFs(), dir)
}

func (s *Store) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("clave inválida %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Load devuelve repository.ErrBlobNotFound si la clave no existe.
func (s *Store) Load(key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, repository.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", key, err)
	}
	return data, nil
}

// Save escribe en un temporal y lo renombra sobre el destino.
func (s *Store) Save(key string, data []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	tmp, err := afero.TempFile(s.fs, s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("cerrar %s: %w", key, err)
	}
	if err := s.fs.Rename(tmpName, p); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("renombrar %s: %w", key, err)
	}
	return nil
}

// Delete borra la clave; si no existe devuelve repository.ErrBlobNotFound.
func (s *Store) Delete(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return repository.ErrBlobNotFound
		}
		return fmt.Errorf("borrar %s: %w", key, err)
	}
	return nil
}
