package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Luchitowick/Terrible-Piolas/internal/apierror"
	"github.com/Luchitowick/Terrible-Piolas/internal/dto"
	"github.com/Luchitowick/Terrible-Piolas/internal/model"
	"github.com/Luchitowick/Terrible-Piolas/internal/repository"
	"github.com/Luchitowick/Terrible-Piolas/internal/service"
	"github.com/Luchitowick/Terrible-Piolas/internal/whatsapp"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const catalogoCacheTTL = 1 * time.Hour

// CatalogoHandler serves the public storefront endpoints. No authentication,
// no side effects; product detail goes through a redis read-through cache
// that write paths invalidate.
type CatalogoHandler struct {
	svc  service.ProductoService
	repo repository.ProductoRepository
	wa   whatsapp.Builder
	rdb  *redis.Client
}

func NewCatalogoHandler(svc service.ProductoService, repo repository.ProductoRepository, wa whatsapp.Builder, rdb *redis.Client) *CatalogoHandler {
	return &CatalogoHandler{svc: svc, repo: repo, wa: wa, rdb: rdb}
}

// Listar GET /v1/catalogo — productos activos, destacados primero.
func (h *CatalogoHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	filter.Activo = "" // el catálogo público solo muestra activos

	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar el catálogo"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Detalle GET /v1/catalogo/:slug
func (h *CatalogoHandler) Detalle(c *gin.Context) {
	slug := c.Param("slug")
	ctx := c.Request.Context()
	cacheKey := service.CatalogoCacheKey(slug)

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.ProductoResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query DB
	resp, err := h.svc.ObtenerPorSlug(ctx, slug)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}
	if !resp.Activo {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, catalogoCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}

// Whatsapp GET /v1/catalogo/:slug/whatsapp?talla=M — link de contacto con el
// mensaje prellenado.
func (h *CatalogoHandler) Whatsapp(c *gin.Context) {
	p, err := h.repo.ObtenerPorSlug(c.Request.Context(), c.Param("slug"))
	if err != nil || !p.Activo {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}

	talla := c.Query("talla")
	if talla != "" && !model.TallaValida(talla) {
		c.JSON(http.StatusBadRequest, apierror.New("Talla inválida"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": h.wa.Link(p, talla)})
}
