// Package system adaptadores del reloj y del generador de identificadores.
package system

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-pos/internal/application/ports"
)

var (
	_ ports.Clock       = (*Clock)(nil)
	_ ports.IDGenerator = UUIDGenerator{}
)

// Clock reloj del sistema en una zona horaria fija.
type Clock struct {
	loc *time.Location
}

// NewClock construye el reloj; loc nil usa time.Local.
func NewClock(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{loc: loc}
}

// LoadLocation resuelve el nombre de zona ("Local", "UTC", "America/Bogota").
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

func (c *Clock) Now() time.Time { return time.Now().In(c.loc) }

func (c *Clock) Location() *time.Location { return c.loc }

// UUIDGenerator genera UUIDv7 (ordenables por tiempo, con parte aleatoria).
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
