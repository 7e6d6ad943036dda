package infra

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MediaStore writes image files under a local directory, one subdirectory per
// product. In production that directory sits on the volume the CDN serves
// from; the database only keeps the relative path returned by Guardar.
type MediaStore struct {
	raiz string
}

func NewMediaStore(raiz string) (*MediaStore, error) {
	if err := os.MkdirAll(raiz, 0o755); err != nil {
		return nil, fmt.Errorf("media store: %w", err)
	}
	return &MediaStore{raiz: raiz}, nil
}

// Guardar copies r to disk and returns the relative path to persist. The
// filename gets a uuid prefix so repeated uploads of "foto.jpg" never clash.
func (m *MediaStore) Guardar(productoID uuid.UUID, nombre string, r io.Reader) (string, error) {
	dir := filepath.Join(m.raiz, "productos", productoID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	nombre = filepath.Base(nombre) // nunca confiar en rutas del cliente
	destino := uuid.NewString() + "_" + nombre
	f, err := os.Create(filepath.Join(dir, destino))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join("productos", productoID.String(), destino)), nil
}

// Eliminar removes a previously stored file. A missing file is not an error:
// the row is gone either way.
func (m *MediaStore) Eliminar(path string) error {
	path = filepath.Clean(path)
	if strings.HasPrefix(path, "..") || filepath.IsAbs(path) {
		return fmt.Errorf("ruta de imagen inválida: %s", path)
	}
	err := os.Remove(filepath.Join(m.raiz, path))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
