package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Luchitowick/Terrible-Piolas/internal/dto"
	"github.com/Luchitowick/Terrible-Piolas/internal/model"
	"github.com/Luchitowick/Terrible-Piolas/internal/repository"
	"github.com/Luchitowick/Terrible-Piolas/internal/slug"
	"github.com/Luchitowick/Terrible-Piolas/internal/whatsapp"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ProductoService defines the business logic contract for products.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	ObtenerPorSlug(ctx context.Context, slug string) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo       repository.ProductoRepository
	categorias repository.CategoriaRepository
	wa         whatsapp.Builder
	rdb        *redis.Client
}

// NewProductoService wires the product business logic. rdb may be nil (unit
// tests); it is only used to drop stale catalog cache entries on writes.
func NewProductoService(
	repo repository.ProductoRepository,
	categorias repository.CategoriaRepository,
	wa whatsapp.Builder,
	rdb *redis.Client,
) ProductoService {
	return &productoService{repo: repo, categorias: categorias, wa: wa, rdb: rdb}
}

// CatalogoCacheKey is the redis key holding the cached public detail of a
// product. Write paths delete it; the catalog handler repopulates on read.
func CatalogoCacheKey(slug string) string { return "catalogo:" + slug }

func (s *productoService) invalidarCatalogo(ctx context.Context, slug string) {
	if s.rdb == nil {
		return
	}
	// Best effort: a stale entry expires by TTL anyway.
	_ = s.rdb.Del(ctx, CatalogoCacheKey(slug)).Err()
}

// ensureSlug derives the slug from the name exactly once. A slug already set,
// whether from a prior save or explicit input, is never regenerated, so
// renaming a product keeps its URL stable.
func ensureSlug(p *model.Producto) {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Nombre)
	}
}

// validarPrecio rejects negative and fractional amounts; prices are whole
// pesos.
func validarPrecio(p *model.Producto) error {
	if p.Precio.IsNegative() {
		return errors.New("el precio no puede ser negativo")
	}
	if !p.Precio.Equal(p.Precio.Truncate(0)) {
		return errors.New("el precio debe ser un monto entero, sin decimales")
	}
	return nil
}

// validarDetalles enforces the tagged-variant rule: the detail group must
// match the category type, never mix.
func validarDetalles(p *model.Producto, cat *model.Categoria) error {
	switch cat.Tipo {
	case model.TipoAccesorio:
		if p.Pantalon.Tipo != nil {
			return errors.New("tipo_pantalon no aplica a una categoría de accesorios")
		}
		if p.Accesorio.Stock < 0 {
			return errors.New("stock_accesorio no puede ser negativo")
		}
	case model.TipoPantalon:
		if detalleAccesorioPresente(&p.Accesorio) {
			return errors.New("los campos de accesorio no aplican a una categoría de pantalones")
		}
		if p.Pantalon.Tipo != nil {
			if _, ok := model.TiposPantalon[*p.Pantalon.Tipo]; !ok {
				return fmt.Errorf("tipo_pantalon desconocido: %s", *p.Pantalon.Tipo)
			}
		}
	default: // polera
		if p.Pantalon.Tipo != nil {
			return errors.New("tipo_pantalon solo aplica a categorías de pantalones")
		}
		if detalleAccesorioPresente(&p.Accesorio) {
			return errors.New("los campos de accesorio solo aplican a categorías de accesorios")
		}
	}
	return nil
}

func detalleAccesorioPresente(d *model.DetalleAccesorio) bool {
	return d.Tipo != nil || d.Material != nil || d.Dimensiones != nil ||
		d.Color != nil || d.Caracteristicas != nil || d.Stock != 0
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, fmt.Errorf("categoria_id inválido: %w", err)
	}
	cat, err := s.categorias.ObtenerPorID(ctx, categoriaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("categoría no encontrada")
		}
		return nil, err
	}

	p := &model.Producto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		CategoriaID: cat.ID,
		Precio:      req.Precio,
		Activo:      true,
		Destacado:   req.Destacado,
		Pantalon:    model.DetallePantalon{Tipo: req.TipoPantalon},
		Accesorio: model.DetalleAccesorio{
			Tipo:            req.TipoAccesorio,
			Material:        req.Material,
			Dimensiones:     req.Dimensiones,
			Color:           req.Color,
			Stock:           req.StockAccesorio,
			Caracteristicas: req.Caracteristicas,
		},
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
	}

	if err := validarPrecio(p); err != nil {
		return nil, err
	}
	if err := validarDetalles(p, cat); err != nil {
		return nil, err
	}

	ensureSlug(p)
	if err := s.repo.Crear(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugEnUso
		}
		return nil, err
	}

	p.Categoria = cat
	resp := s.mapProducto(p)
	return &resp, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	resp := s.mapProducto(p)
	return &resp, nil
}

func (s *productoService) ObtenerPorSlug(ctx context.Context, slug string) (*dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorSlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	resp := s.mapProducto(p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	productos, total, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		data = append(data, s.mapProducto(&productos[i]))
	}
	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}
	return &dto.ProductoListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}

	cat := p.Categoria
	if req.CategoriaID != nil {
		categoriaID, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, fmt.Errorf("categoria_id inválido: %w", err)
		}
		cat, err = s.categorias.ObtenerPorID(ctx, categoriaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("categoría no encontrada")
			}
			return nil, err
		}
		p.CategoriaID = cat.ID
		p.Categoria = cat
	}

	// El nombre puede cambiar; el slug ya asignado nunca se regenera.
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = *req.Descripcion
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}
	if req.Destacado != nil {
		p.Destacado = *req.Destacado
	}
	if req.TipoPantalon != nil {
		p.Pantalon.Tipo = req.TipoPantalon
	}
	if req.TipoAccesorio != nil {
		p.Accesorio.Tipo = req.TipoAccesorio
	}
	if req.Material != nil {
		p.Accesorio.Material = req.Material
	}
	if req.Dimensiones != nil {
		p.Accesorio.Dimensiones = req.Dimensiones
	}
	if req.Color != nil {
		p.Accesorio.Color = req.Color
	}
	if req.StockAccesorio != nil {
		p.Accesorio.Stock = *req.StockAccesorio
	}
	if req.Caracteristicas != nil {
		p.Accesorio.Caracteristicas = req.Caracteristicas
	}

	if err := validarPrecio(p); err != nil {
		return nil, err
	}
	if err := validarDetalles(p, cat); err != nil {
		return nil, err
	}

	ensureSlug(p)
	if err := s.repo.Actualizar(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugEnUso
		}
		return nil, err
	}

	s.invalidarCatalogo(ctx, p.Slug)
	resp := s.mapProducto(p)
	return &resp, nil
}

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return err
	}
	s.invalidarCatalogo(ctx, p.Slug)
	return nil
}

func (s *productoService) Reactivar(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	if err := s.repo.Reactivar(ctx, id); err != nil {
		return err
	}
	s.invalidarCatalogo(ctx, p.Slug)
	return nil
}

func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	if err := s.repo.Eliminar(ctx, id); err != nil {
		return err
	}
	s.invalidarCatalogo(ctx, p.Slug)
	return nil
}

// mapProducto assembles the full response, including the derived
// availability, formatted price and WhatsApp link.
func (s *productoService) mapProducto(p *model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:                 p.ID.String(),
		Nombre:             p.Nombre,
		Slug:               p.Slug,
		Descripcion:        p.Descripcion,
		Precio:             p.Precio,
		PrecioFormateado:   p.PrecioFormateado(),
		Activo:             p.Activo,
		Destacado:          p.Destacado,
		FechaCreacion:      p.FechaCreacion,
		FechaActualizacion: p.FechaActualizacion,
		TipoPantalon:       p.Pantalon.Tipo,
		TieneStock:         p.TieneStock(),
		StockTotal:         p.StockTotal(),
		WhatsappURL:        s.wa.Link(p, ""),
	}
	if p.Categoria != nil {
		resp.Categoria = mapCategoria(*p.Categoria)
	}
	if p.EsAccesorio() {
		resp.TipoAccesorio = p.Accesorio.Tipo
		resp.Material = p.Accesorio.Material
		resp.Dimensiones = p.Accesorio.Dimensiones
		resp.Color = p.Accesorio.Color
		resp.Caracteristicas = p.Accesorio.Caracteristicas
	} else {
		resp.Tallas = make([]dto.StockTallaResponse, 0, len(p.StockTallas))
		for _, st := range p.StockTallas {
			resp.Tallas = append(resp.Tallas, dto.StockTallaResponse{
				Talla:    st.Talla,
				Cantidad: st.Cantidad,
				Estado:   st.EstadoStock(),
			})
		}
	}
	resp.Imagenes = make([]dto.ImagenResponse, 0, len(p.Imagenes))
	for _, img := range p.Imagenes {
		resp.Imagenes = append(resp.Imagenes, dto.ImagenResponse{
			ID:          img.ID,
			Imagen:      img.Imagen,
			Orden:       img.Orden,
			EsPrincipal: img.EsPrincipal,
		})
	}
	return resp
}
