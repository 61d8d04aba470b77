package entity

// Settings configuración de negocio persistida junto al inventario.
type Settings struct {
	DefaultMinStock int
	Currency        string // solo visualización (ISO 4217)
	Notifications   bool
}

// DefaultSettings valores usados cuando no hay configuración guardada o es inválida.
func DefaultSettings() Settings {
	return Settings{
		DefaultMinStock: 5,
		Currency:        "INR",
		Notifications:   true,
	}
}
