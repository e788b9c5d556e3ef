package repository

import (
	"context"

	"github.com/jhoicas/plantnet-api/internal/domain/entity"
)

// PlantRepository puerto de persistencia de publicaciones.
type PlantRepository interface {
	Create(ctx context.Context, plant *entity.Plant) error
	// GetByID devuelve (nil, nil) si la planta no existe.
	GetByID(ctx context.Context, id string) (*entity.Plant, error)
	List(ctx context.Context) ([]*entity.Plant, error)
	// AdjustQuantity aplica quantity = quantity + delta en una sola sentencia
	// (delta negativo decrementa). Devuelve false si la planta no existe.
	// No hay guarda contra cantidades negativas bajo checkouts concurrentes.
	AdjustQuantity(ctx context.Context, id string, delta int) (bool, error)
	CountAll(ctx context.Context) (int64, error)
}
