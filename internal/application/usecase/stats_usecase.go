package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/plantnet-api/internal/application/dto"
	"github.com/jhoicas/plantnet-api/internal/domain/repository"
)

// StatsUseCase genera el resumen del panel admin: totales de usuarios,
// publicaciones y pedidos, más la serie de pedidos/ingresos por día.
//
// Fuente de datos: los repositorios de cada recurso (consultas read-only).
type StatsUseCase struct {
	users  repository.UserRepository
	plants repository.PlantRepository
	orders repository.OrderRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(users repository.UserRepository, plants repository.PlantRepository, orders repository.OrderRepository) *StatsUseCase {
	return &StatsUseCase{users: users, plants: plants, orders: orders}
}

// GetStatistic construye el StatisticResponse.
//
// Cuatro llamadas en paralelo:
//  1. CountAll(users)   → TotalUsers
//  2. CountAll(plants)  → TotalPlants
//  3. Totals(orders)    → TotalOrders + TotalRevenue
//  4. DailyStats        → ChartData
func (uc *StatsUseCase) GetStatistic(ctx context.Context) (*dto.StatisticResponse, error) {
	type countResult struct {
		n   int64
		err error
	}
	type totalsResult struct {
		totals repository.OrderTotals
		err    error
	}
	type dailyResult struct {
		rows []repository.DailyOrderStats
		err  error
	}

	usersCh := make(chan countResult, 1)
	plantsCh := make(chan countResult, 1)
	totalsCh := make(chan totalsResult, 1)
	dailyCh := make(chan dailyResult, 1)

	go func() {
		n, err := uc.users.CountAll(ctx)
		usersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.plants.CountAll(ctx)
		plantsCh <- countResult{n, err}
	}()
	go func() {
		t, err := uc.orders.Totals(ctx)
		totalsCh <- totalsResult{t, err}
	}()
	go func() {
		rows, err := uc.orders.DailyStats(ctx)
		dailyCh <- dailyResult{rows, err}
	}()

	users := <-usersCh
	plants := <-plantsCh
	totals := <-totalsCh
	daily := <-dailyCh

	if users.err != nil {
		return nil, fmt.Errorf("contar usuarios: %w", users.err)
	}
	if plants.err != nil {
		return nil, fmt.Errorf("contar plantas: %w", plants.err)
	}
	if totals.err != nil {
		return nil, fmt.Errorf("totales de pedidos: %w", totals.err)
	}
	if daily.err != nil {
		return nil, fmt.Errorf("serie diaria de pedidos: %w", daily.err)
	}

	chart := make([]dto.DailyStatDTO, 0, len(daily.rows))
	for _, row := range daily.rows {
		chart = append(chart, dto.DailyStatDTO{
			Date:    row.Date.Format("2006-01-02"),
			Orders:  row.Orders,
			Revenue: row.Revenue,
		})
	}

	return &dto.StatisticResponse{
		TotalUsers:   users.n,
		TotalPlants:  plants.n,
		TotalOrders:  totals.totals.Orders,
		TotalRevenue: totals.totals.Revenue,
		ChartData:    chart,
	}, nil
}
