package service

import (
	"context"
	"testing"

	"github.com/Luchitowick/Terrible-Piolas/internal/dto"
	"github.com/Luchitowick/Terrible-Piolas/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearCategoria(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{
		Nombre: "Poleras",
		Tipo:   model.TipoPolera,
		Orden:  1,
	})

	require.NoError(t, err)
	assert.Equal(t, "Poleras", resp.Nombre)
	assert.Equal(t, model.TipoPolera, resp.Tipo)
	assert.True(t, resp.Activo)
}

func TestCrearCategoria_NombreDuplicado(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Poleras", Tipo: model.TipoPolera})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "poleras", Tipo: model.TipoPolera})

	assert.ErrorContains(t, err, "ya existe una categoría")
}

func TestActualizarCategoria_TipoInmutable(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo)

	creada, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Accesorios", Tipo: model.TipoAccesorio})
	require.NoError(t, err)

	nombre := "Accesorios Urbanos"
	orden := 5
	resp, err := svc.Actualizar(context.Background(), creada.ID, dto.ActualizarCategoriaRequest{
		Nombre: &nombre,
		Orden:  &orden,
	})

	require.NoError(t, err)
	assert.Equal(t, "Accesorios Urbanos", resp.Nombre)
	assert.Equal(t, 5, resp.Orden)
	// El tipo no forma parte del request de actualización.
	assert.Equal(t, model.TipoAccesorio, resp.Tipo)
}

func TestListarCategorias_SoloActivas(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo)

	a, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Poleras", Tipo: model.TipoPolera, Orden: 2})
	require.NoError(t, err)
	_, err = svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Pantalones", Tipo: model.TipoPantalon, Orden: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Desactivar(context.Background(), a.ID))

	activas, err := svc.Listar(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, activas, 1)
	assert.Equal(t, "Pantalones", activas[0].Nombre)

	todas, err := svc.Listar(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, todas, 2)
}

func TestDesactivarCategoria_NoEncontrada(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := NewCategoriaService(repo)

	err := svc.Desactivar(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrNoEncontrado)
}
