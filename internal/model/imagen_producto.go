package model

import "github.com/google/uuid"

// ImagenProducto references one image of a product in the media store.
// Across all images of a product, at most one may have EsPrincipal=true;
// the repository clears rival flags inside the same transaction that
// persists a new primary.
type ImagenProducto struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Imagen is the path/key inside the media store, never the bytes.
	Imagen string `gorm:"not null"`
	// Orden controla la posición en el carrusel.
	Orden       int  `gorm:"not null;default:0"`
	EsPrincipal bool `gorm:"not null;default:false"`

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default pluralization (imagen_productos → imagenes_producto).
func (ImagenProducto) TableName() string { return "imagenes_producto" }
