package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/plantnet-api/internal/domain/entity"
)

// DailyOrderStats pedidos e ingresos agregados por día (para el panel admin).
type DailyOrderStats struct {
	Date    time.Time
	Orders  int64
	Revenue decimal.Decimal
}

// OrderTotals totales globales de pedidos.
type OrderTotals struct {
	Orders  int64
	Revenue decimal.Decimal
}

// OrderRepository puerto de persistencia de pedidos (insert-once, inmutables).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	ListByCustomer(ctx context.Context, email string) ([]*entity.Order, error)
	ListBySeller(ctx context.Context, email string) ([]*entity.Order, error)
	// DailyStats agrupa número de pedidos e ingresos por día, ascendente por fecha.
	DailyStats(ctx context.Context) ([]DailyOrderStats, error)
	Totals(ctx context.Context) (OrderTotals, error)
}
