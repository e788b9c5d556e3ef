package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/plantnet-api/internal/application/dto"
	"github.com/jhoicas/plantnet-api/internal/application/usecase"
	"github.com/jhoicas/plantnet-api/internal/domain/repository"
)

func TestStatsGetStatistic_TotalesYSerieDiaria(t *testing.T) {
	ctx := context.Background()

	users := newFakeUserRepo()
	userUC := usecase.NewUserUseCase(users)
	for _, email := range []string{"a@x.com", "b@x.com"} {
		_, err := userUC.Upsert(ctx, dto.UpsertUserRequest{Email: email})
		require.NoError(t, err)
	}

	plants := newFakePlantRepo()
	plantUC := usecase.NewPlantUseCase(plants)
	seedPlant(t, plantUC, 10, 5)
	seedPlant(t, plantUC, 20, 3)

	orders := &fakeOrderRepo{
		daily: []repository.DailyOrderStats{
			{Date: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), Orders: 2, Revenue: decimal.NewFromInt(50)},
			{Date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), Orders: 1, Revenue: decimal.NewFromInt(20)},
		},
	}
	orderUC := usecase.NewOrderUseCase(orders)
	for _, price := range []int64{30, 20, 20} {
		_, err := orderUC.Create(ctx, dto.CreateOrderRequest{
			CustomerEmail: "a@x.com",
			SellerEmail:   "b@x.com",
			PlantID:       "p1",
			Quantity:      1,
			Price:         decimal.NewFromInt(price),
		})
		require.NoError(t, err)
	}

	uc := usecase.NewStatsUseCase(users, plants, orders)
	out, err := uc.GetStatistic(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.TotalUsers)
	assert.Equal(t, int64(2), out.TotalPlants)
	assert.Equal(t, int64(3), out.TotalOrders)
	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromInt(70)))

	require.Len(t, out.ChartData, 2)
	assert.Equal(t, "2026-08-26", out.ChartData[0].Date)
	assert.Equal(t, int64(2), out.ChartData[0].Orders)
	assert.True(t, out.ChartData[0].Revenue.Equal(decimal.NewFromInt(50)))
}
