package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/plantnet-api/internal/domain/entity"
	"github.com/jhoicas/plantnet-api/internal/domain/repository"
)

var _ repository.PlantRepository = (*PlantRepo)(nil)

// PlantRepo implementación del puerto PlantRepository sobre PostgreSQL.
type PlantRepo struct {
	q Querier
}

// NewPlantRepository construye el adaptador de persistencia para publicaciones.
func NewPlantRepository(q Querier) *PlantRepo {
	return &PlantRepo{q: q}
}

// Create persiste una nueva publicación.
func (r *PlantRepo) Create(ctx context.Context, plant *entity.Plant) error {
	query := `
		INSERT INTO plants (id, name, category, description, image, price, quantity, seller_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		plant.ID, plant.Name, plant.Category, plant.Description, plant.Image,
		plant.Price, plant.Quantity, plant.SellerEmail, plant.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plant: %w", err)
	}
	return nil
}

// GetByID obtiene una publicación por ID. Devuelve (nil, nil) si no existe.
func (r *PlantRepo) GetByID(ctx context.Context, id string) (*entity.Plant, error) {
	query := `
		SELECT id, name, category, description, image, price, quantity, seller_email, created_at
		FROM plants WHERE id = $1`
	var p entity.Plant
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Description, &p.Image,
		&p.Price, &p.Quantity, &p.SellerEmail, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plant: %w", err)
	}
	return &p, nil
}

// List devuelve todas las publicaciones, más recientes primero.
func (r *PlantRepo) List(ctx context.Context) ([]*entity.Plant, error) {
	query := `
		SELECT id, name, category, description, image, price, quantity, seller_email, created_at
		FROM plants ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Plant
	for rows.Next() {
		var p entity.Plant
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Description, &p.Image,
			&p.Price, &p.Quantity, &p.SellerEmail, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan plant: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// AdjustQuantity aplica quantity = quantity + delta en una sola sentencia.
// Atómico a nivel de fila; sin chequeo de concurrencia optimista, el stock
// puede quedar negativo bajo checkouts concurrentes (comportamiento heredado).
func (r *PlantRepo) AdjustQuantity(ctx context.Context, id string, delta int) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE plants SET quantity = quantity + $2 WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return false, fmt.Errorf("adjust plant quantity: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// CountAll cuenta todas las publicaciones.
func (r *PlantRepo) CountAll(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM plants`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count plants: %w", err)
	}
	return n, nil
}
