package repository

import "errors"

// Claves del almacén de blobs.
const (
	KeyInventory    = "inventory_enhanced_v2"
	KeySalesHistory = "salesHistory_enhanced_v2"
	KeySettings     = "settings_enhanced_v2"
)

// ErrBlobNotFound la clave no tiene contenido guardado.
var ErrBlobNotFound = errors.New("blob no encontrado")

// BlobStore almacén clave → bytes con un único escritor.
type BlobStore interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Delete(key string) error
}
