package service

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/Luchitowick/Terrible-Piolas/internal/dto"
	"github.com/Luchitowick/Terrible-Piolas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory CategoriaRepository stub ───────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[uuid.UUID]*model.Categoria
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[uuid.UUID]*model.Categoria)}
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context, soloActivas bool) ([]model.Categoria, error) {
	var result []model.Categoria
	for _, c := range r.categorias {
		if soloActivas && !c.Activo {
			continue
		}
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Orden != result[j].Orden {
			return result[i].Orden < result[j].Orden
		}
		return result[i].Nombre < result[j].Nombre
	})
	return result, nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoriaRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if strings.EqualFold(c.Nombre, nombre) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) Actualizar(_ context.Context, c *model.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	c, ok := r.categorias[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Activo = false
	return nil
}

func (r *stubCategoriaRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.categorias, id)
	return nil
}

// ── In-memory ProductoRepository stub ────────────────────────────────────────

type stubProductoRepo struct {
	productos  map[uuid.UUID]*model.Producto
	categorias *stubCategoriaRepo
}

func newStubProductoRepo(categorias *stubCategoriaRepo) *stubProductoRepo {
	return &stubProductoRepo{
		productos:  make(map[uuid.UUID]*model.Producto),
		categorias: categorias,
	}
}

func (r *stubProductoRepo) slugEnUso(slug string, salvo uuid.UUID) bool {
	for _, p := range r.productos {
		if p.Slug == slug && p.ID != salvo {
			return true
		}
	}
	return false
}

func (r *stubProductoRepo) Crear(_ context.Context, p *model.Producto) error {
	if r.slugEnUso(p.Slug, p.ID) {
		return gorm.ErrDuplicatedKey
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

// cargar emulates the repository preloads.
func (r *stubProductoRepo) cargar(p *model.Producto) *model.Producto {
	if p.Categoria == nil && r.categorias != nil {
		p.Categoria = r.categorias.categorias[p.CategoriaID]
	}
	return p
}

func (r *stubProductoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.cargar(p), nil
}

func (r *stubProductoRepo) ObtenerPorSlug(_ context.Context, slug string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.Slug == slug {
			return r.cargar(p), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) Listar(_ context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var result []model.Producto
	for _, p := range r.productos {
		switch filter.Activo {
		case "false":
			if p.Activo {
				continue
			}
		case "all":
		default:
			if !p.Activo {
				continue
			}
		}
		if filter.Destacado && !p.Destacado {
			continue
		}
		if filter.Nombre != "" && !strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(filter.Nombre)) {
			continue
		}
		result = append(result, *r.cargar(p))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Destacado != result[j].Destacado {
			return result[i].Destacado
		}
		return result[i].FechaCreacion.After(result[j].FechaCreacion)
	})

	total := int64(len(result))
	inicio := (filter.Page - 1) * filter.Limit
	if inicio > len(result) {
		inicio = len(result)
	}
	fin := inicio + filter.Limit
	if fin > len(result) {
		fin = len(result)
	}
	return result[inicio:fin], total, nil
}

func (r *stubProductoRepo) Actualizar(_ context.Context, p *model.Producto) error {
	if r.slugEnUso(p.Slug, p.ID) {
		return gorm.ErrDuplicatedKey
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

func (r *stubProductoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = true
	return nil
}

func (r *stubProductoRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

// ── In-memory StockTallaRepository stub ──────────────────────────────────────

type stubStockRepo struct {
	filas map[string]*model.StockTalla // key: productoID + "/" + talla
}

func newStubStockRepo() *stubStockRepo {
	return &stubStockRepo{filas: make(map[string]*model.StockTalla)}
}

func claveStock(productoID uuid.UUID, talla string) string {
	return productoID.String() + "/" + talla
}

func (r *stubStockRepo) Upsert(_ context.Context, st *model.StockTalla) error {
	clave := claveStock(st.ProductoID, st.Talla)
	if existente, ok := r.filas[clave]; ok {
		existente.Cantidad = st.Cantidad
		*st = *existente
		return nil
	}
	if st.ID == uuid.Nil {
		st.ID = uuid.New()
	}
	r.filas[clave] = st
	return nil
}

func (r *stubStockRepo) ListarPorProducto(_ context.Context, productoID uuid.UUID) ([]model.StockTalla, error) {
	var result []model.StockTalla
	for _, st := range r.filas {
		if st.ProductoID == productoID {
			result = append(result, *st)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Talla < result[j].Talla })
	return result, nil
}

func (r *stubStockRepo) ObtenerPorTalla(_ context.Context, productoID uuid.UUID, talla string) (*model.StockTalla, error) {
	st, ok := r.filas[claveStock(productoID, talla)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return st, nil
}

// ── In-memory ImagenRepository stub ──────────────────────────────────────────
// Reproduces the repository contract: persisting a primary clears the rival
// flags of the same product as part of the same operation.

type stubImagenRepo struct {
	imagenes map[uuid.UUID]*model.ImagenProducto
}

func newStubImagenRepo() *stubImagenRepo {
	return &stubImagenRepo{imagenes: make(map[uuid.UUID]*model.ImagenProducto)}
}

func (r *stubImagenRepo) limpiarPrincipales(productoID, salvo uuid.UUID) {
	for _, img := range r.imagenes {
		if img.ProductoID == productoID && img.ID != salvo {
			img.EsPrincipal = false
		}
	}
}

func (r *stubImagenRepo) Guardar(_ context.Context, img *model.ImagenProducto) error {
	if img.ID == uuid.Nil {
		img.ID = uuid.New()
	}
	if img.EsPrincipal {
		r.limpiarPrincipales(img.ProductoID, img.ID)
	}
	r.imagenes[img.ID] = img
	return nil
}

func (r *stubImagenRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.ImagenProducto, error) {
	img, ok := r.imagenes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return img, nil
}

func (r *stubImagenRepo) ListarPorProducto(_ context.Context, productoID uuid.UUID) ([]model.ImagenProducto, error) {
	var result []model.ImagenProducto
	for _, img := range r.imagenes {
		if img.ProductoID == productoID {
			result = append(result, *img)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].EsPrincipal != result[j].EsPrincipal {
			return result[i].EsPrincipal
		}
		return result[i].Orden < result[j].Orden
	})
	return result, nil
}

func (r *stubImagenRepo) MarcarPrincipal(_ context.Context, productoID, imagenID uuid.UUID) error {
	img, ok := r.imagenes[imagenID]
	if !ok || img.ProductoID != productoID {
		return gorm.ErrRecordNotFound
	}
	r.limpiarPrincipales(productoID, imagenID)
	img.EsPrincipal = true
	return nil
}

func (r *stubImagenRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.imagenes, id)
	return nil
}

// ── In-memory MediaStore stub ────────────────────────────────────────────────

type stubMediaStore struct {
	guardados []string
	borrados  []string
}

func (m *stubMediaStore) Guardar(productoID uuid.UUID, nombre string, r io.Reader) (string, error) {
	_, _ = io.ReadAll(r)
	path := "productos/" + productoID.String() + "/" + nombre
	m.guardados = append(m.guardados, path)
	return path, nil
}

func (m *stubMediaStore) Eliminar(path string) error {
	m.borrados = append(m.borrados, path)
	return nil
}
