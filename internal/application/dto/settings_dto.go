package dto

// SettingsDTO configuración de negocio.
type SettingsDTO struct {
	DefaultMinStock int    `json:"default_min_stock"`
	Currency        string `json:"currency"`
	Notifications   bool   `json:"notifications"`
}

// UpdateSettingsRequest actualización parcial de la configuración.
type UpdateSettingsRequest struct {
	DefaultMinStock *int    `json:"default_min_stock"`
	Currency        *string `json:"currency"`
	Notifications   *bool   `json:"notifications"`
}

// ClearAllRequest confirmación explícita para borrar todos los datos.
type ClearAllRequest struct {
	Confirm string `json:"confirm"` // debe ser "DELETE ALL"
}

// RestoreResponse resumen de una restauración.
type RestoreResponse struct {
	Products int `json:"products"`
	Sales    int `json:"sales"`
}
