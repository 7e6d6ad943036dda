package dto

import "github.com/google/uuid"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=2,max=100"`
	Tipo        string  `json:"tipo"        validate:"required,oneof=polera pantalon accesorio"`
	Descripcion *string `json:"descripcion"`
	Orden       int     `json:"orden"       validate:"min=0"`
}

// ActualizarCategoriaRequest deliberately has no Tipo field: the type tag is
// fixed at creation because product detail fields depend on it.
type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,min=2,max=100"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
	Orden       *int    `json:"orden"       validate:"omitempty,min=0"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Tipo        string    `json:"tipo"`
	Descripcion *string   `json:"descripcion,omitempty"`
	Activo      bool      `json:"activo"`
	Orden       int       `json:"orden"`
}
