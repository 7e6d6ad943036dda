package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de categoría. El tipo decide qué campos del producto aplican y cómo
// se modela el stock (por talla vs contador de accesorio).
const (
	TipoPolera    = "polera"
	TipoPantalon  = "pantalon"
	TipoAccesorio = "accesorio"
)

// TiposCategoria lists the valid category type tags.
var TiposCategoria = []string{TipoPolera, TipoPantalon, TipoAccesorio}

// Categoria groups products and carries the type tag that discriminates
// sized apparel from unsized accessories. The tipo is immutable after
// creation: update requests never carry it.
type Categoria struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null"`
	Tipo        string    `gorm:"not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`
	// Orden controla la posición de la categoría en el catálogo.
	Orden     int `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Categoria) TableName() string { return "categorias" }

// TipoCategoriaValido reports whether tipo is a known category type tag.
func TipoCategoriaValido(tipo string) bool {
	for _, t := range TiposCategoria {
		if t == tipo {
			return true
		}
	}
	return false
}
