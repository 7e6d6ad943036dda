package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

// ActualizarStockRequest sets the absolute quantity for one size of a product.
type ActualizarStockRequest struct {
	Cantidad int `json:"cantidad" validate:"min=0"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type StockTallaResponse struct {
	Talla    string `json:"talla"`
	Cantidad int    `json:"cantidad"`
	// Estado: sin_stock | poco_stock | buen_stock
	Estado string `json:"estado"`
}
