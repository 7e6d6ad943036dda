package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de pantalón (solo aplican cuando la categoría es "pantalon").
const (
	PantalonShort  = "short"
	PantalonLargo  = "pantalon_largo"
	PantalonJogger = "jogger"
)

// TiposPantalon maps each pants sub-type to its display label.
var TiposPantalon = map[string]string{
	PantalonShort:  "Short",
	PantalonLargo:  "Pantalón Largo",
	PantalonJogger: "Jogger",
}

// TiposAccesorio maps each accessory sub-type to its display label.
var TiposAccesorio = map[string]string{
	"mochila":   "Mochila",
	"cinturon":  "Cinturón",
	"cartera":   "Cartera",
	"cadena":    "Cadena",
	"gorra":     "Gorra",
	"llavero":   "Llavero",
	"billetera": "Billetera",
	"riñonera":  "Riñonera",
	"collar":    "Collar",
	"pulsera":   "Pulsera",
	"anillo":    "Anillo",
	"bolso":     "Bolso",
	"otro":      "Otro",
}

// DetallePantalon agrupa los campos que solo existen para pantalones/shorts.
type DetallePantalon struct {
	Tipo *string `gorm:"column:tipo_pantalon"`
}

// DetalleAccesorio agrupa los campos que solo existen para accesorios.
// Los accesorios no manejan tallas: su stock es un contador único.
type DetalleAccesorio struct {
	Tipo            *string `gorm:"column:tipo_accesorio"`
	Material        *string
	Dimensiones     *string
	Color           *string
	Stock           int `gorm:"column:stock_accesorio;not null;default:0"`
	Caracteristicas *string
}

// Producto is the aggregate root of the catalog. One struct models two
// disjoint shapes (sized apparel and unsized accessories) discriminated by
// Categoria.Tipo; the detail groups are mutually exclusive and the service
// layer rejects cross-category combinations.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Slug        string    `gorm:"uniqueIndex;not null"`
	Descripcion string    `gorm:"not null"`
	CategoriaID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Precio en pesos enteros, sin decimales.
	Precio             decimal.Decimal `gorm:"type:decimal(10,0);not null"`
	Activo             bool            `gorm:"not null;default:true"`
	Destacado          bool            `gorm:"not null;default:false"`
	FechaCreacion      time.Time       `gorm:"autoCreateTime"`
	FechaActualizacion time.Time       `gorm:"autoUpdateTime"`

	Pantalon  DetallePantalon  `gorm:"embedded"`
	Accesorio DetalleAccesorio `gorm:"embedded"`

	Categoria   *Categoria       `gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE"`
	StockTallas []StockTalla     `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
	Imagenes    []ImagenProducto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default pluralization (productoes → productos).
func (Producto) TableName() string { return "productos" }

// EsAccesorio reports whether the product belongs to an accessory category.
// Requires Categoria to be preloaded.
func (p *Producto) EsAccesorio() bool {
	return p.Categoria != nil && p.Categoria.Tipo == TipoAccesorio
}

// TieneStock reports availability. Accessories check their unit counter;
// apparel checks for at least one size with units. Requires Categoria and
// StockTallas preloaded.
func (p *Producto) TieneStock() bool {
	if p.EsAccesorio() {
		return p.Accesorio.Stock > 0
	}
	for _, st := range p.StockTallas {
		if st.Cantidad > 0 {
			return true
		}
	}
	return false
}

// StockTotal returns the unit counter for accessories, or the sum across all
// sizes for apparel (0 when no size rows exist).
func (p *Producto) StockTotal() int {
	if p.EsAccesorio() {
		return p.Accesorio.Stock
	}
	total := 0
	for _, st := range p.StockTallas {
		total += st.Cantidad
	}
	return total
}

// PrecioFormateado renders the price as "$15,000": thousands-grouped, no
// decimal places.
func (p *Producto) PrecioFormateado() string {
	return "$" + agruparMiles(p.Precio.StringFixed(0))
}

// agruparMiles inserts a comma every three digits counting from the right.
func agruparMiles(digitos string) string {
	if len(digitos) <= 3 {
		return digitos
	}
	var b strings.Builder
	resto := len(digitos) % 3
	if resto > 0 {
		b.WriteString(digitos[:resto])
	}
	for i := resto; i < len(digitos); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digitos[i : i+3])
	}
	return b.String()
}
