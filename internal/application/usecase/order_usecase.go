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

// OrderUseCase casos de uso de pedidos: registro en el checkout y listados
// por comprador y por vendedor. Los pedidos son inmutables una vez creados.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create registra el pedido colocado en el checkout.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerEmail == "" || in.SellerEmail == "" || in.PlantID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	status := "pending"
	order := &entity.Order{
		ID:            uuid.New().String(),
		CustomerEmail: in.CustomerEmail,
		SellerEmail:   in.SellerEmail,
		PlantID:       in.PlantID,
		PlantName:     in.PlantName,
		Quantity:      in.Quantity,
		Price:         in.Price,
		Address:       in.Address,
		Status:        status,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListByCustomer devuelve los pedidos colocados por el comprador.
func (uc *OrderUseCase) ListByCustomer(ctx context.Context, email string) ([]dto.OrderResponse, error) {
	orders, err := uc.repo.ListByCustomer(ctx, email)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// ListBySeller devuelve los pedidos recibidos por el vendedor.
func (uc *OrderUseCase) ListBySeller(ctx context.Context, email string) ([]dto.OrderResponse, error) {
	orders, err := uc.repo.ListBySeller(ctx, email)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

func toOrderResponses(orders []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o))
	}
	return out
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		CustomerEmail: o.CustomerEmail,
		SellerEmail:   o.SellerEmail,
		PlantID:       o.PlantID,
		PlantName:     o.PlantName,
		Quantity:      o.Quantity,
		Price:         o.Price,
		Address:       o.Address,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}
