package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Todos son recuperables: la operación se rechaza y el estado previo queda intacto.
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicateName     = errors.New("ya existe un producto con ese nombre")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
)

// ErrProductNotFound y ErrSaleNotFound son variantes de ErrNotFound (errors.Is las reconoce).
var (
	ErrProductNotFound = fmt.Errorf("producto: %w", ErrNotFound)
	ErrSaleNotFound    = fmt.Errorf("venta: %w", ErrNotFound)
)
