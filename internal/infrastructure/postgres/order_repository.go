package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/plantnet-api/internal/domain/entity"
	"github.com/jhoicas/plantnet-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Los pedidos solo se insertan; no hay UPDATE ni DELETE sobre esta tabla.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un nuevo pedido.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_email, seller_email, plant_id, plant_name, quantity, price, address, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.CustomerEmail, order.SellerEmail, order.PlantID, order.PlantName,
		order.Quantity, order.Price, order.Address, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListByCustomer devuelve los pedidos del comprador, más recientes primero.
func (r *OrderRepo) ListByCustomer(ctx context.Context, email string) ([]*entity.Order, error) {
	return r.list(ctx, `customer_email`, email)
}

// ListBySeller devuelve los pedidos recibidos por el vendedor, más recientes primero.
func (r *OrderRepo) ListBySeller(ctx context.Context, email string) ([]*entity.Order, error) {
	return r.list(ctx, `seller_email`, email)
}

func (r *OrderRepo) list(ctx context.Context, column, email string) ([]*entity.Order, error) {
	// column proviene de las dos constantes de arriba, nunca de entrada del usuario
	query := fmt.Sprintf(`
		SELECT id, customer_email, seller_email, plant_id, plant_name, quantity, price, address, status, created_at
		FROM orders WHERE %s = $1 ORDER BY created_at DESC`, column)
	rows, err := r.q.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list orders by %s: %w", column, err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerEmail, &o.SellerEmail, &o.PlantID, &o.PlantName,
			&o.Quantity, &o.Price, &o.Address, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// DailyStats agrupa número de pedidos e ingresos por día, ascendente por fecha.
func (r *OrderRepo) DailyStats(ctx context.Context) ([]repository.DailyOrderStats, error) {
	const query = `
	SELECT
	    created_at::date          AS day,
	    COUNT(*)                  AS orders,
	    COALESCE(SUM(price), 0)   AS revenue
	FROM orders
	GROUP BY day
	ORDER BY day`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("orders.DailyStats: %w", err)
	}
	defer rows.Close()

	var results []repository.DailyOrderStats
	for rows.Next() {
		var row repository.DailyOrderStats
		if err := rows.Scan(&row.Date, &row.Orders, &row.Revenue); err != nil {
			return nil, fmt.Errorf("orders.DailyStats scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// Totals devuelve el número total de pedidos y el ingreso acumulado.
// COALESCE devuelve cero cuando aún no hay pedidos.
func (r *OrderRepo) Totals(ctx context.Context) (repository.OrderTotals, error) {
	const query = `
	SELECT COUNT(*), COALESCE(SUM(price), 0)
	FROM orders`

	var t repository.OrderTotals
	if err := r.q.QueryRow(ctx, query).Scan(&t.Orders, &t.Revenue); err != nil {
		return repository.OrderTotals{}, fmt.Errorf("orders.Totals: %w", err)
	}
	return t, nil
}
