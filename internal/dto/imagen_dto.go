package dto

import "github.com/google/uuid"

// ── Request DTOs ──────────────────────────────────────────────────────────────

// SubirImagenRequest accompanies the multipart file field "imagen".
type SubirImagenRequest struct {
	Orden       int  `form:"orden"        validate:"min=0"`
	EsPrincipal bool `form:"es_principal"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ImagenResponse struct {
	ID          uuid.UUID `json:"id"`
	Imagen      string    `json:"imagen"`
	Orden       int       `json:"orden"`
	EsPrincipal bool      `json:"es_principal"`
}
