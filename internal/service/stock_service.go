package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Luchitowick/Terrible-Piolas/internal/dto"
	"github.com/Luchitowick/Terrible-Piolas/internal/model"
	"github.com/Luchitowick/Terrible-Piolas/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// StockService manages per-size stock of apparel products.
type StockService interface {
	// ActualizarTalla fija la cantidad absoluta de una talla. Crea la fila si
	// no existe; la pareja (producto, talla) es única.
	ActualizarTalla(ctx context.Context, productoID uuid.UUID, talla string, req dto.ActualizarStockRequest) (*dto.StockTallaResponse, error)
	ListarPorProducto(ctx context.Context, productoID uuid.UUID) ([]dto.StockTallaResponse, error)
}

type stockService struct {
	repo      repository.StockTallaRepository
	productos repository.ProductoRepository
	rdb       *redis.Client
}

func NewStockService(repo repository.StockTallaRepository, productos repository.ProductoRepository, rdb *redis.Client) StockService {
	return &stockService{repo: repo, productos: productos, rdb: rdb}
}

func mapStockTalla(st model.StockTalla) dto.StockTallaResponse {
	return dto.StockTallaResponse{
		Talla:    st.Talla,
		Cantidad: st.Cantidad,
		Estado:   st.EstadoStock(),
	}
}

func (s *stockService) ActualizarTalla(ctx context.Context, productoID uuid.UUID, talla string, req dto.ActualizarStockRequest) (*dto.StockTallaResponse, error) {
	if !model.TallaValida(talla) {
		return nil, fmt.Errorf("talla inválida: %s (válidas: S, M, L, XL)", talla)
	}
	if req.Cantidad < 0 {
		return nil, errors.New("la cantidad no puede ser negativa")
	}

	p, err := s.productos.ObtenerPorID(ctx, productoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	if p.EsAccesorio() {
		return nil, errors.New("los accesorios no manejan tallas; use stock_accesorio en el producto")
	}

	st := &model.StockTalla{
		ProductoID: productoID,
		Talla:      talla,
		Cantidad:   req.Cantidad,
	}
	if err := s.repo.Upsert(ctx, st); err != nil {
		return nil, err
	}

	if s.rdb != nil {
		_ = s.rdb.Del(ctx, CatalogoCacheKey(p.Slug)).Err()
	}

	resp := mapStockTalla(*st)
	return &resp, nil
}

func (s *stockService) ListarPorProducto(ctx context.Context, productoID uuid.UUID) ([]dto.StockTallaResponse, error) {
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
	result := make([]dto.StockTallaResponse, 0, len(list))
	for _, st := range list {
		result = append(result, mapStockTalla(st))
	}
	return result, nil
}
