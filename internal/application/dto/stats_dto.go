package dto

import "github.com/shopspring/decimal"

// DailyStatDTO una fila del gráfico de pedidos/ingresos por día.
type DailyStatDTO struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// StatisticResponse resumen del panel admin: totales + serie diaria.
type StatisticResponse struct {
	TotalUsers   int64           `json:"total_users"`
	TotalPlants  int64           `json:"total_plants"`
	TotalOrders  int64           `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	ChartData    []DailyStatDTO  `json:"chart_data"`
}
