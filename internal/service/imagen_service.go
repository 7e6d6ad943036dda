package service

import (
	"context"
	"errors"
	"io"

	"github.com/Luchitowick/Terrible-Piolas/internal/dto"
	"github.com/Luchitowick/Terrible-Piolas/internal/model"
	"github.com/Luchitowick/Terrible-Piolas/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// MediaStore abstracts where image bytes live. The service only persists the
// returned path, never the bytes.
type MediaStore interface {
	Guardar(productoID uuid.UUID, nombre string, r io.Reader) (string, error)
	Eliminar(path string) error
}

// ImagenService manages product images and the single-primary invariant.
type ImagenService interface {
	Subir(ctx context.Context, productoID uuid.UUID, nombre string, archivo io.Reader, req dto.SubirImagenRequest) (*dto.ImagenResponse, error)
	ListarPorProducto(ctx context.Context, productoID uuid.UUID) ([]dto.ImagenResponse, error)
	// MarcarPrincipal designa la imagen de portada, limpiando atómicamente la
	// marca de las demás imágenes del producto.
	MarcarPrincipal(ctx context.Context, productoID, imagenID uuid.UUID) error
	Eliminar(ctx context.Context, productoID, imagenID uuid.UUID) error
}

type imagenService struct {
	repo      repository.ImagenRepository
	productos repository.ProductoRepository
	media     MediaStore
	rdb       *redis.Client
}

func NewImagenService(
	repo repository.ImagenRepository,
	productos repository.ProductoRepository,
	media MediaStore,
	rdb *redis.Client,
) ImagenService {
	return &imagenService{repo: repo, productos: productos, media: media, rdb: rdb}
}

func mapImagen(img model.ImagenProducto) dto.ImagenResponse {
	return dto.ImagenResponse{
		ID:          img.ID,
		Imagen:      img.Imagen,
		Orden:       img.Orden,
		EsPrincipal: img.EsPrincipal,
	}
}

func (s *imagenService) invalidarCatalogo(ctx context.Context, slug string) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, CatalogoCacheKey(slug)).Err()
}

func (s *imagenService) Subir(ctx context.Context, productoID uuid.UUID, nombre string, archivo io.Reader, req dto.SubirImagenRequest) (*dto.ImagenResponse, error) {
	p, err := s.productos.ObtenerPorID(ctx, productoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}

	path, err := s.media.Guardar(productoID, nombre, archivo)
	if err != nil {
		return nil, err
	}

	img := &model.ImagenProducto{
		ProductoID:  productoID,
		Imagen:      path,
		Orden:       req.Orden,
		EsPrincipal: req.EsPrincipal,
	}
	if err := s.repo.Guardar(ctx, img); err != nil {
		// La fila no se guardó; no dejar el archivo huérfano en el media store.
		_ = s.media.Eliminar(path)
		return nil, err
	}

	s.invalidarCatalogo(ctx, p.Slug)
	resp := mapImagen(*img)
	return &resp, nil
}

func (s *imagenService) ListarPorProducto(ctx context.Context, productoID uuid.UUID) ([]dto.ImagenResponse, error) {
	if _, err := s.productos.ObtenerPorID(ctx, productoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	list, err := s.repo.ListarPorProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ImagenResponse, 0, len(list))
	for _, img := range list {
		result = append(result, mapImagen(img))
	}
	return result, nil
}

func (s *imagenService) MarcarPrincipal(ctx context.Context, productoID, imagenID uuid.UUID) error {
	p, err := s.productos.ObtenerPorID(ctx, productoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	if err := s.repo.MarcarPrincipal(ctx, productoID, imagenID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	s.invalidarCatalogo(ctx, p.Slug)
	return nil
}

func (s *imagenService) Eliminar(ctx context.Context, productoID, imagenID uuid.UUID) error {
	p, err := s.productos.ObtenerPorID(ctx, productoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	img, err := s.repo.ObtenerPorID(ctx, imagenID)
	if err != nil || img.ProductoID != productoID {
		return ErrNoEncontrado
	}
	if err := s.repo.Eliminar(ctx, imagenID); err != nil {
		return err
	}
	_ = s.media.Eliminar(img.Imagen)
	s.invalidarCatalogo(ctx, p.Slug)
	return nil
}
