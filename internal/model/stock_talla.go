package model

import "github.com/google/uuid"

// Tallas disponibles para prendas.
var TallasValidas = []string{"S", "M", "L", "XL"}

// Estados de stock derivados de la cantidad. Umbral bajo: 5 unidades.
const (
	EstadoSinStock  = "sin_stock"
	EstadoPocoStock = "poco_stock"
	EstadoBuenStock = "buen_stock"
)

// StockTalla holds the units available for one size of one apparel product.
// At most one row per (producto, talla).
type StockTalla struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_producto_talla;not null"`
	Talla      string    `gorm:"uniqueIndex:idx_producto_talla;not null"`
	Cantidad   int       `gorm:"not null;default:0"`

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default pluralization (stock_tallas is already plural).
func (StockTalla) TableName() string { return "stock_tallas" }

// EstadoStock classifies the quantity for display: 0 units, 1–5 units, or
// more. Recomputed on every read, never persisted.
func (st *StockTalla) EstadoStock() string {
	switch {
	case st.Cantidad == 0:
		return EstadoSinStock
	case st.Cantidad <= 5:
		return EstadoPocoStock
	default:
		return EstadoBuenStock
	}
}

// TallaValida reports whether talla is one of the sizes the store handles.
func TallaValida(talla string) bool {
	for _, t := range TallasValidas {
		if t == talla {
			return true
		}
	}
	return false
}
