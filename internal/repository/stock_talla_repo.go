package repository

import (
	"context"

	"github.com/Luchitowick/Terrible-Piolas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockTallaRepository manages per-size stock rows of apparel products.
type StockTallaRepository interface {
	// Upsert crea la fila (producto, talla) o actualiza su cantidad si ya existe.
	Upsert(ctx context.Context, st *model.StockTalla) error
	ListarPorProducto(ctx context.Context, productoID uuid.UUID) ([]model.StockTalla, error)
	ObtenerPorTalla(ctx context.Context, productoID uuid.UUID, talla string) (*model.StockTalla, error)
}

type stockTallaRepo struct{ db *gorm.DB }

func NewStockTallaRepository(db *gorm.DB) StockTallaRepository {
	return &stockTallaRepo{db: db}
}

func (r *stockTallaRepo) Upsert(ctx context.Context, st *model.StockTalla) error {
	// The (producto_id, talla) unique index arbitrates concurrent upserts.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "producto_id"}, {Name: "talla"}},
		DoUpdates: clause.AssignmentColumns([]string{"cantidad"}),
	}).Create(st).Error
}

func (r *stockTallaRepo) ListarPorProducto(ctx context.Context, productoID uuid.UUID) ([]model.StockTalla, error) {
	var list []model.StockTalla
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Order("talla ASC").
		Find(&list).Error
	return list, err
}

func (r *stockTallaRepo) ObtenerPorTalla(ctx context.Context, productoID uuid.UUID, talla string) (*model.StockTalla, error) {
	var st model.StockTalla
	err := r.db.WithContext(ctx).
		Where("producto_id = ? AND talla = ?", productoID, talla).
		First(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}
