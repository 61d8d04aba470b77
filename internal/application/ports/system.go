package ports

import "time"

// Clock puerto de salida para la hora actual. Los reportes y las marcas de tiempo
// de productos y ventas la toman de aquí; los tests inyectan un reloj fijo.
type Clock interface {
	Now() time.Time
	// Location zona horaria en la que se calculan días, semanas y meses.
	Location() *time.Location
}

// IDGenerator puerto para identificadores opacos de productos y ventas.
type IDGenerator interface {
	NewID() string
}
