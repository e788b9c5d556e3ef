package repository

import (
	"context"

	"github.com/jhoicas/plantnet-api/internal/domain/entity"
)

// UserRepository puerto de persistencia de usuarios (únicos por email).
// Los métodos de lectura devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	// Upsert crea el usuario si el email no existe; si ya existe solo
	// refresca last_login. Devuelve true cuando hubo inserción.
	Upsert(ctx context.Context, user *entity.User) (created bool, err error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListExcept lista todos los usuarios excepto el del email indicado.
	ListExcept(ctx context.Context, email string) ([]*entity.User, error)
	// UpdateRole fija rol y estado. Devuelve false si el usuario no existe.
	UpdateRole(ctx context.Context, email, role, status string) (bool, error)
	// UpdateStatus fija solo el estado de la cuenta. Devuelve false si no existe.
	UpdateStatus(ctx context.Context, email, status string) (bool, error)
	CountAll(ctx context.Context) (int64, error)
}
