package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/plantnet-api/internal/application/dto"
	"github.com/jhoicas/plantnet-api/internal/application/usecase"
	"github.com/jhoicas/plantnet-api/internal/domain"
)

func TestOrderCreate_AsignaIDYEstadoInicial(t *testing.T) {
	uc := usecase.NewOrderUseCase(&fakeOrderRepo{})

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerEmail: "c@x.com",
		SellerEmail:   "s@x.com",
		PlantID:       "p1",
		PlantName:     "Monstera",
		Quantity:      2,
		Price:         decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "pending", out.Status)
}

func TestOrderCreate_CamposFaltantes_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewOrderUseCase(&fakeOrderRepo{})
	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{CustomerEmail: "c@x.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderList_FiltraPorCompradorYVendedor(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := usecase.NewOrderUseCase(repo)
	ctx := context.Background()

	seed := []dto.CreateOrderRequest{
		{CustomerEmail: "c1@x.com", SellerEmail: "s1@x.com", PlantID: "p1", Quantity: 1, Price: decimal.NewFromInt(10)},
		{CustomerEmail: "c1@x.com", SellerEmail: "s2@x.com", PlantID: "p2", Quantity: 1, Price: decimal.NewFromInt(15)},
		{CustomerEmail: "c2@x.com", SellerEmail: "s1@x.com", PlantID: "p3", Quantity: 1, Price: decimal.NewFromInt(20)},
	}
	for _, in := range seed {
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	byCustomer, err := uc.ListByCustomer(ctx, "c1@x.com")
	require.NoError(t, err)
	assert.Len(t, byCustomer, 2)

	bySeller, err := uc.ListBySeller(ctx, "s1@x.com")
	require.NoError(t, err)
	assert.Len(t, bySeller, 2)
}
