package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/plantnet-api/internal/application/dto"
	"github.com/jhoicas/plantnet-api/internal/domain"
	"github.com/jhoicas/plantnet-api/internal/domain/entity"
	"github.com/jhoicas/plantnet-api/internal/domain/repository"
)

// PlantUseCase casos de uso CRUD para publicaciones del marketplace.
type PlantUseCase struct {
	repo repository.PlantRepository
}

// NewPlantUseCase construye el caso de uso.
func NewPlantUseCase(repo repository.PlantRepository) *PlantUseCase {
	return &PlantUseCase{repo: repo}
}

// Create publica una planta a nombre del vendedor autenticado.
func (uc *PlantUseCase) Create(ctx context.Context, sellerEmail string, in dto.CreatePlantRequest) (*dto.PlantResponse, error) {
	if in.Name == "" || sellerEmail == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	plant := &entity.Plant{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Image:       in.Image,
		Price:       in.Price,
		Quantity:    in.Quantity,
		SellerEmail: sellerEmail,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, plant); err != nil {
		return nil, err
	}
	return toPlantResponse(plant), nil
}

// GetByID obtiene una publicación. Devuelve (nil, nil) si no existe: la ruta
// responde cuerpo nulo en ese caso, no un error (contrato heredado).
func (uc *PlantUseCase) GetByID(ctx context.Context, id string) (*dto.PlantResponse, error) {
	plant, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, nil
	}
	return toPlantResponse(plant), nil
}

// List devuelve todas las publicaciones.
func (uc *PlantUseCase) List(ctx context.Context) ([]dto.PlantResponse, error) {
	plants, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlantResponse, 0, len(plants))
	for _, p := range plants {
		out = append(out, *toPlantResponse(p))
	}
	return out, nil
}

// UpdateQuantity aplica el incremento o decremento de stock ligado a un pedido.
// status "decrease" resta updatedQuantity; cualquier otro valor lo suma.
// El ajuste es una única sentencia atómica en el almacenamiento; no hay guarda
// contra cantidades negativas bajo checkouts concurrentes.
func (uc *PlantUseCase) UpdateQuantity(ctx context.Context, id string, in dto.UpdateQuantityRequest) error {
	delta := in.UpdatedQuantity
	if in.Status == "decrease" {
		delta = -delta
	}
	ok, err := uc.repo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toPlantResponse(p *entity.Plant) *dto.PlantResponse {
	if p == nil {
		return nil
	}
	return &dto.PlantResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
		Price:       p.Price,
		Quantity:    p.Quantity,
		SellerEmail: p.SellerEmail,
		CreatedAt:   p.CreatedAt,
	}
}
