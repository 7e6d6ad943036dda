package repository

import (
	"context"

	"github.com/Luchitowick/Terrible-Piolas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImagenRepository manages product images and the single-primary invariant.
type ImagenRepository interface {
	// Guardar persiste la imagen. Si viene marcada como principal, limpia la
	// marca de las demás imágenes del producto dentro de la misma transacción,
	// de modo que nunca quede más de una principal.
	Guardar(ctx context.Context, img *model.ImagenProducto) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.ImagenProducto, error)
	ListarPorProducto(ctx context.Context, productoID uuid.UUID) ([]model.ImagenProducto, error)
	// MarcarPrincipal convierte una imagen existente en la principal, limpiando
	// las rivales en la misma transacción.
	MarcarPrincipal(ctx context.Context, productoID, imagenID uuid.UUID) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type imagenRepo struct{ db *gorm.DB }

func NewImagenRepository(db *gorm.DB) ImagenRepository { return &imagenRepo{db: db} }

func (r *imagenRepo) Guardar(ctx context.Context, img *model.ImagenProducto) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if img.EsPrincipal {
			if err := tx.Model(&model.ImagenProducto{}).
				Where("producto_id = ? AND es_principal = true AND id <> ?", img.ProductoID, img.ID).
				Update("es_principal", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(img).Error
	})
}

func (r *imagenRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.ImagenProducto, error) {
	var img model.ImagenProducto
	err := r.db.WithContext(ctx).First(&img, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *imagenRepo) ListarPorProducto(ctx context.Context, productoID uuid.UUID) ([]model.ImagenProducto, error) {
	var list []model.ImagenProducto
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Order("es_principal DESC, orden ASC").
		Find(&list).Error
	return list, err
}

func (r *imagenRepo) MarcarPrincipal(ctx context.Context, productoID, imagenID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ImagenProducto{}).
			Where("producto_id = ? AND es_principal = true AND id <> ?", productoID, imagenID).
			Update("es_principal", false).Error; err != nil {
			return err
		}
		res := tx.Model(&model.ImagenProducto{}).
			Where("id = ? AND producto_id = ?", imagenID, productoID).
			Update("es_principal", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *imagenRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ImagenProducto{}, "id = ?", id).Error
}
