package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Luchitowick/Terrible-Piolas/internal/dto"
	"github.com/Luchitowick/Terrible-Piolas/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoEntornoImagenes(t *testing.T) (*stubCategoriaRepo, *stubProductoRepo, *stubImagenRepo, *stubMediaStore, ImagenService) {
	t.Helper()
	categorias := newStubCategoriaRepo()
	productos := newStubProductoRepo(categorias)
	imagenes := newStubImagenRepo()
	media := &stubMediaStore{}
	svc := NewImagenService(imagenes, productos, media, nil)
	return categorias, productos, imagenes, media, svc
}

func TestSubirImagen_GuardaArchivoYFila(t *testing.T) {
	categorias, productos, imagenes, media, svc := nuevoEntornoImagenes(t)
	cat := crearCategoria(t, categorias, "Poleras", model.TipoPolera)
	p := crearProducto(t, productos, cat, "Polera Negra", "polera-negra")

	resp, err := svc.Subir(context.Background(), p.ID, "frente.jpg",
		strings.NewReader("bytes-de-imagen"), dto.SubirImagenRequest{Orden: 1})

	require.NoError(t, err)
	assert.Contains(t, resp.Imagen, p.ID.String())
	assert.False(t, resp.EsPrincipal)
	assert.Len(t, media.guardados, 1)

	guardada, err := imagenes.ObtenerPorID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, guardada.Orden)
}

func TestSubirImagen_PrincipalDesplazaALaAnterior(t *testing.T) {
	categorias, productos, imagenes, _, svc := nuevoEntornoImagenes(t)
	cat := crearCategoria(t, categorias, "Poleras", model.TipoPolera)
	p := crearProducto(t, productos, cat, "Polera Negra", "polera-negra")

	a, err := svc.Subir(context.Background(), p.ID, "a.jpg",
		strings.NewReader("a"), dto.SubirImagenRequest{EsPrincipal: true})
	require.NoError(t, err)

	b, err := svc.Subir(context.Background(), p.ID, "b.jpg",
		strings.NewReader("b"), dto.SubirImagenRequest{EsPrincipal: true})
	require.NoError(t, err)

	lista, err := imagenes.ListarPorProducto(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, lista, 2)

	principales := 0
	for _, img := range lista {
		if img.EsPrincipal {
			principales++
			assert.Equal(t, b.ID, img.ID)
		}
	}
	assert.Equal(t, 1, principales)

	imgA, err := imagenes.ObtenerPorID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.False(t, imgA.EsPrincipal)
}

func TestMarcarPrincipal_Exclusividad(t *testing.T) {
	categorias, productos, imagenes, _, svc := nuevoEntornoImagenes(t)
	cat := crearCategoria(t, categorias, "Poleras", model.TipoPolera)
	p := crearProducto(t, productos, cat, "Polera Negra", "polera-negra")

	a, err := svc.Subir(context.Background(), p.ID, "a.jpg",
		strings.NewReader("a"), dto.SubirImagenRequest{EsPrincipal: true})
	require.NoError(t, err)
	b, err := svc.Subir(context.Background(), p.ID, "b.jpg",
		strings.NewReader("b"), dto.SubirImagenRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.MarcarPrincipal(context.Background(), p.ID, b.ID))

	imgA, _ := imagenes.ObtenerPorID(context.Background(), a.ID)
	imgB, _ := imagenes.ObtenerPorID(context.Background(), b.ID)
	assert.False(t, imgA.EsPrincipal)
	assert.True(t, imgB.EsPrincipal)
}

func TestMarcarPrincipal_ImagenDeOtroProducto(t *testing.T) {
	categorias, productos, _, _, svc := nuevoEntornoImagenes(t)
	cat := crearCategoria(t, categorias, "Poleras", model.TipoPolera)
	p1 := crearProducto(t, productos, cat, "Polera Uno", "polera-uno")
	p2 := crearProducto(t, productos, cat, "Polera Dos", "polera-dos")

	img, err := svc.Subir(context.Background(), p1.ID, "a.jpg",
		strings.NewReader("a"), dto.SubirImagenRequest{})
	require.NoError(t, err)

	// La imagen pertenece a p1; marcarla vía p2 no debe tocarla.
	err = svc.MarcarPrincipal(context.Background(), p2.ID, img.ID)

	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestEliminarImagen_BorraArchivo(t *testing.T) {
	categorias, productos, imagenes, media, svc := nuevoEntornoImagenes(t)
	cat := crearCategoria(t, categorias, "Poleras", model.TipoPolera)
	p := crearProducto(t, productos, cat, "Polera Negra", "polera-negra")

	img, err := svc.Subir(context.Background(), p.ID, "a.jpg",
		strings.NewReader("a"), dto.SubirImagenRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), p.ID, img.ID))

	_, err = imagenes.ObtenerPorID(context.Background(), img.ID)
	assert.Error(t, err)
	require.Len(t, media.borrados, 1)
	assert.Equal(t, img.Imagen, media.borrados[0])
}

func TestEliminarImagen_ProductoInexistente(t *testing.T) {
	_, _, _, _, svc := nuevoEntornoImagenes(t)

	err := svc.Eliminar(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrNoEncontrado)
}
