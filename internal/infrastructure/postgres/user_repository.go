package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/plantnet-api/internal/domain/entity"
	"github.com/jhoicas/plantnet-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// El email es la clave primaria: no existen duplicados por construcción.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Upsert inserta el usuario o, si el email ya existe, refresca solo last_login.
// xmax = 0 distingue inserción de actualización en la fila retornada.
func (r *UserRepo) Upsert(ctx context.Context, user *entity.User) (bool, error) {
	query := `
		INSERT INTO users (email, name, image, role, status, created_at, last_login)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email) DO UPDATE SET last_login = EXCLUDED.last_login
		RETURNING (xmax = 0) AS inserted`
	var inserted bool
	err := r.q.QueryRow(ctx, query,
		user.Email, user.Name, user.Image, user.Role, user.Status,
		user.CreatedAt, user.LastLogin,
	).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("upsert user: %w", err)
	}
	return inserted, nil
}

// GetByEmail obtiene un usuario por email. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT email, name, image, role, status, created_at, last_login
		FROM users WHERE email = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, email).Scan(
		&u.Email, &u.Name, &u.Image, &u.Role, &u.Status, &u.CreatedAt, &u.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// ListExcept lista todos los usuarios excepto el del email indicado (el panel
// admin no se muestra a sí mismo).
func (r *UserRepo) ListExcept(ctx context.Context, email string) ([]*entity.User, error) {
	query := `
		SELECT email, name, image, role, status, created_at, last_login
		FROM users WHERE email <> $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.Email, &u.Name, &u.Image, &u.Role, &u.Status, &u.CreatedAt, &u.LastLogin); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// UpdateRole fija rol y estado de la cuenta. Devuelve false si el email no existe.
func (r *UserRepo) UpdateRole(ctx context.Context, email, role, status string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE users SET role = $2, status = $3 WHERE email = $1`,
		email, role, status,
	)
	if err != nil {
		return false, fmt.Errorf("update user role: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// UpdateStatus fija solo el estado. Devuelve false si el email no existe.
func (r *UserRepo) UpdateStatus(ctx context.Context, email, status string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE users SET status = $2 WHERE email = $1`,
		email, status,
	)
	if err != nil {
		return false, fmt.Errorf("update user status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// CountAll cuenta todas las cuentas registradas.
func (r *UserRepo) CountAll(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
