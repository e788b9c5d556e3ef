package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/plantnet-api/internal/application/dto"
	"github.com/jhoicas/plantnet-api/internal/application/ports"
	"github.com/jhoicas/plantnet-api/internal/domain"
	"github.com/jhoicas/plantnet-api/internal/domain/repository"
)

const intentCurrency = "usd"

var cents = decimal.NewFromInt(100)

// PaymentUseCase crea el payment intent del checkout: una lectura de la
// planta seguida de una llamada al proveedor de pagos por quantity × price.
type PaymentUseCase struct {
	plants  repository.PlantRepository
	intents ports.PaymentIntents
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(plants repository.PlantRepository, intents ports.PaymentIntents) *PaymentUseCase {
	return &PaymentUseCase{plants: plants, intents: intents}
}

// CreateIntent calcula el monto en centavos (quantity × precio unitario × 100)
// y solicita el intent al proveedor. Devuelve ErrNotFound si la planta no existe.
func (uc *PaymentUseCase) CreateIntent(ctx context.Context, in dto.CreateIntentRequest) (*dto.CreateIntentResponse, error) {
	if in.PlantID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	plant, err := uc.plants.GetByID(ctx, in.PlantID)
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, domain.ErrNotFound
	}

	amount := plant.Price.
		Mul(decimal.NewFromInt(int64(in.Quantity))).
		Mul(cents).
		Round(0).
		IntPart()

	clientSecret, err := uc.intents.CreateIntent(ctx, amount, intentCurrency)
	if err != nil {
		return nil, err
	}
	return &dto.CreateIntentResponse{ClientSecret: clientSecret}, nil
}
