package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required,min=2,max=200"`
	Slug        *string         `json:"slug"         validate:"omitempty,min=2,max=200"`
	Descripcion string          `json:"descripcion"  validate:"required"`
	CategoriaID string          `json:"categoria_id" validate:"required,uuid"`
	Precio      decimal.Decimal `json:"precio"       validate:"min=0"`
	Destacado   bool            `json:"destacado"`

	// Solo para categorías tipo pantalon
	TipoPantalon *string `json:"tipo_pantalon" validate:"omitempty,oneof=short pantalon_largo jogger"`

	// Solo para categorías tipo accesorio
	TipoAccesorio   *string `json:"tipo_accesorio" validate:"omitempty,oneof=mochila cinturon cartera cadena gorra llavero billetera riñonera collar pulsera anillo bolso otro"`
	Material        *string `json:"material"        validate:"omitempty,max=100"`
	Dimensiones     *string `json:"dimensiones"     validate:"omitempty,max=100"`
	Color           *string `json:"color"           validate:"omitempty,max=50"`
	StockAccesorio  int     `json:"stock_accesorio" validate:"min=0"`
	Caracteristicas *string `json:"caracteristicas"`
}

// ActualizarProductoRequest has no Slug field: slugs are permanent once
// assigned, even when the name changes.
type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"       validate:"omitempty,min=2,max=200"`
	Descripcion *string          `json:"descripcion"`
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid"`
	Precio      *decimal.Decimal `json:"precio"`
	Destacado   *bool            `json:"destacado"`

	TipoPantalon *string `json:"tipo_pantalon" validate:"omitempty,oneof=short pantalon_largo jogger"`

	TipoAccesorio   *string `json:"tipo_accesorio" validate:"omitempty,oneof=mochila cinturon cartera cadena gorra llavero billetera riñonera collar pulsera anillo bolso otro"`
	Material        *string `json:"material"        validate:"omitempty,max=100"`
	Dimensiones     *string `json:"dimensiones"     validate:"omitempty,max=100"`
	Color           *string `json:"color"           validate:"omitempty,max=50"`
	StockAccesorio  *int    `json:"stock_accesorio" validate:"omitempty,min=0"`
	Caracteristicas *string `json:"caracteristicas"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductoFilter struct {
	// Activo: "false" = inactivos, "all" = todos, default = activos
	Activo    string `form:"activo"`
	Categoria string `form:"categoria" validate:"omitempty,uuid"`
	Destacado bool   `form:"destacado"`
	Nombre    string `form:"nombre"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID                 string            `json:"id"`
	Nombre             string            `json:"nombre"`
	Slug               string            `json:"slug"`
	Descripcion        string            `json:"descripcion"`
	Categoria          CategoriaResponse `json:"categoria"`
	Precio             decimal.Decimal   `json:"precio"`
	PrecioFormateado   string            `json:"precio_formateado"`
	Activo             bool              `json:"activo"`
	Destacado          bool              `json:"destacado"`
	FechaCreacion      time.Time         `json:"fecha_creacion"`
	FechaActualizacion time.Time         `json:"fecha_actualizacion"`

	TipoPantalon *string `json:"tipo_pantalon,omitempty"`

	TipoAccesorio   *string `json:"tipo_accesorio,omitempty"`
	Material        *string `json:"material,omitempty"`
	Dimensiones     *string `json:"dimensiones,omitempty"`
	Color           *string `json:"color,omitempty"`
	Caracteristicas *string `json:"caracteristicas,omitempty"`

	TieneStock  bool                 `json:"tiene_stock"`
	StockTotal  int                  `json:"stock_total"`
	Tallas      []StockTallaResponse `json:"tallas,omitempty"`
	Imagenes    []ImagenResponse     `json:"imagenes"`
	WhatsappURL string               `json:"whatsapp_url"`
}

type ProductoListResponse struct {
	Data       []ProductoResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}
