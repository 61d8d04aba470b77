package filestore_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-pos/internal/domain/repository"
	"github.com/jhoicas/Inventario-pos/internal/infrastructure/filestore"
)

func newStore(t *testing.T) (*filestore.Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	s, err := filestore.New(fs, "/data")
	require.NoError(t, err)
	return s, fs
}

func TestStore_GuardarYLeer(t *testing.T) {
	s, fs := newStore(t)

	require.NoError(t, s.Save(repository.KeyInventory, []byte(`[{"id":"p-1"}]`)))

	got, err := s.Load(repository.KeyInventory)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"p-1"}]`, string(got))

	exists, err := afero.Exists(fs, "/data/inventory_enhanced_v2.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStore_SobrescribeSinDejarTemporales(t *testing.T) {
	s, fs := newStore(t)
	require.NoError(t, s.Save("k", []byte("1")))
	require.NoError(t, s.Save("k", []byte("2")))

	got, err := s.Load("k")
	require.NoError(t, err)
	assert.Equal(t, "2", string(got))

	entries, err := afero.ReadDir(fs, "/data")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_ClaveInexistente(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Load(repository.KeySettings)
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)

	assert.ErrorIs(t, s.Delete(repository.KeySettings), repository.ErrBlobNotFound)
}

func TestStore_Delete(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Save("k", []byte("x")))

	require.NoError(t, s.Delete("k"))

	_, err := s.Load("k")
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)
}

func TestStore_RechazaClavesConRuta(t *testing.T) {
	s, _ := newStore(t)

	assert.Error(t, s.Save("../fuera", []byte("x")))
	_, err := s.Load("a/b")
	assert.Error(t, err)
}

func TestNew_DirectorioNoCreable(t *testing.T) {
	_, err := filestore.New(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/data")

	assert.Error(t, err)
}
