// Package whatsapp builds prefilled wa.me contact links for product
// inquiries. The store has no checkout: every sale starts as a WhatsApp
// conversation seeded by these links.
package whatsapp

import (
	"net/url"
	"strings"

	"github.com/Luchitowick/Terrible-Piolas/internal/model"
)

// Builder constructs contact links against a fixed phone number. Both values
// come from configuration, never from literals in calling code.
type Builder struct {
	baseURL  string
	telefono string
}

func NewBuilder(baseURL, telefono string) Builder {
	return Builder{baseURL: strings.TrimRight(baseURL, "/"), telefono: telefono}
}

// Link returns the wa.me URL with a prefilled inquiry message for p. The
// optional talla is included when the shopper already picked a size.
// Requires Categoria preloaded when the product has detail fields set.
func (b Builder) Link(p *model.Producto, talla string) string {
	var m strings.Builder
	m.WriteString("Hola! Estoy interesado en: *" + p.Nombre + "*\n")
	m.WriteString("Precio: " + p.PrecioFormateado() + "\n")

	if talla != "" {
		m.WriteString("Talla: " + talla + "\n")
	}
	if p.Pantalon.Tipo != nil {
		m.WriteString("Tipo: " + model.TiposPantalon[*p.Pantalon.Tipo] + "\n")
	}
	if p.Accesorio.Tipo != nil {
		m.WriteString("Tipo: " + model.TiposAccesorio[*p.Accesorio.Tipo] + "\n")
	}
	if p.Accesorio.Color != nil {
		m.WriteString("Color: " + *p.Accesorio.Color + "\n")
	}

	m.WriteString("\n¿Está disponible?")

	// Percent-encode with %20 for spaces, matching what WhatsApp expects in
	// the text parameter.
	encoded := strings.ReplaceAll(url.QueryEscape(m.String()), "+", "%20")
	return b.baseURL + "/" + b.telefono + "?text=" + encoded
}
