package service

import (
	"context"
	"testing"

	"github.com/Luchitowick/Terrible-Piolas/internal/dto"
	"github.com/Luchitowick/Terrible-Piolas/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoEntornoStock(t *testing.T) (*stubCategoriaRepo, *stubProductoRepo, *stubStockRepo, StockService) {
	t.Helper()
	categorias := newStubCategoriaRepo()
	productos := newStubProductoRepo(categorias)
	stock := newStubStockRepo()
	svc := NewStockService(stock, productos, nil)
	return categorias, productos, stock, svc
}

func crearProducto(t *testing.T, productos *stubProductoRepo, cat *model.Categoria, nombre, slug string) *model.Producto {
	t.Helper()
	p := &model.Producto{
		Nombre:      nombre,
		Slug:        slug,
		CategoriaID: cat.ID,
		Categoria:   cat,
		Precio:      decimal.NewFromInt(9990),
		Activo:      true,
	}
	require.NoError(t, productos.Crear(context.Background(), p))
	return p
}

func TestActualizarTalla_CreaYReemplaza(t *testing.T) {
	categorias, productos, stock, svc := nuevoEntornoStock(t)
	cat := crearCategoria(t, categorias, "Poleras", model.TipoPolera)
	p := crearProducto(t, productos, cat, "Polera Negra", "polera-negra")

	resp, err := svc.ActualizarTalla(context.Background(), p.ID, "M", dto.ActualizarStockRequest{Cantidad: 8})
	require.NoError(t, err)
	assert.Equal(t, "buen_stock", resp.Estado)

	// Segunda escritura sobre la misma talla reemplaza la cantidad, no crea
	// otra fila.
	resp, err = svc.ActualizarTalla(context.Background(), p.ID, "M", dto.ActualizarStockRequest{Cantidad: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Cantidad)
	assert.Equal(t, "poco_stock", resp.Estado)

	filas, err := stock.ListarPorProducto(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, filas, 1)
}

func TestActualizarTalla_RechazaAccesorios(t *testing.T) {
	categorias, productos, _, svc := nuevoEntornoStock(t)
	cat := crearCategoria(t, categorias, "Accesorios", model.TipoAccesorio)
	p := crearProducto(t, productos, cat, "Gorra Trucker", "gorra-trucker")

	_, err := svc.ActualizarTalla(context.Background(), p.ID, "M", dto.ActualizarStockRequest{Cantidad: 5})

	assert.ErrorContains(t, err, "accesorios no manejan tallas")
}

func TestActualizarTalla_TallaInvalida(t *testing.T) {
	categorias, productos, _, svc := nuevoEntornoStock(t)
	cat := crearCategoria(t, categorias, "Poleras", model.TipoPolera)
	p := crearProducto(t, productos, cat, "Polera", "polera")

	_, err := svc.ActualizarTalla(context.Background(), p.ID, "XXL", dto.ActualizarStockRequest{Cantidad: 5})

	assert.ErrorContains(t, err, "talla inválida")
}

func TestActualizarTalla_ProductoInexistente(t *testing.T) {
	_, _, _, svc := nuevoEntornoStock(t)

	_, err := svc.ActualizarTalla(context.Background(), uuid.New(), "M", dto.ActualizarStockRequest{Cantidad: 5})

	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestListarStock_OrdenadoPorTalla(t *testing.T) {
	categorias, productos, _, svc := nuevoEntornoStock(t)
	cat := crearCategoria(t, categorias, "Poleras", model.TipoPolera)
	p := crearProducto(t, productos, cat, "Polera", "polera")

	for talla, cantidad := range map[string]int{"S": 0, "M": 3, "L": 7} {
		_, err := svc.ActualizarTalla(context.Background(), p.ID, talla, dto.ActualizarStockRequest{Cantidad: cantidad})
		require.NoError(t, err)
	}

	filas, err := svc.ListarPorProducto(context.Background(), p.ID)

	require.NoError(t, err)
	require.Len(t, filas, 3)
	estados := map[string]string{}
	for _, f := range filas {
		estados[f.Talla] = f.Estado
	}
	assert.Equal(t, "sin_stock", estados["S"])
	assert.Equal(t, "poco_stock", estados["M"])
	assert.Equal(t, "buen_stock", estados["L"])
}
