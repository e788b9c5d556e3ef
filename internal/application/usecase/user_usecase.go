package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/plantnet-api/internal/application/dto"
	"github.com/jhoicas/plantnet-api/internal/domain"
	"github.com/jhoicas/plantnet-api/internal/domain/entity"
	"github.com/jhoicas/plantnet-api/internal/domain/repository"
)

// UserUseCase casos de uso de cuentas: upsert en cada inicio de sesión,
// consulta de rol, listado para el panel admin y cambios de rol/estado.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Upsert registra al usuario en su primer inicio de sesión con rol customer.
// Si el email ya existe solo refresca last_login: no se crean duplicados.
func (uc *UserUseCase) Upsert(ctx context.Context, in dto.UpsertUserRequest) (*dto.UpsertUserResponse, error) {
	if in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	user := &entity.User{
		Email:     in.Email,
		Name:      in.Name,
		Image:     in.Image,
		Role:      entity.RoleCustomer,
		CreatedAt: now,
		LastLogin: now,
	}
	created, err := uc.repo.Upsert(ctx, user)
	if err != nil {
		return nil, err
	}
	stored, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	return &dto.UpsertUserResponse{Inserted: created, User: *toUserResponse(stored)}, nil
}

// GetRole devuelve el rol almacenado. Si el usuario no existe el rol queda
// vacío, igual que el contrato original (la ruta no responde 404).
func (uc *UserUseCase) GetRole(ctx context.Context, email string) (*dto.RoleResponse, error) {
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &dto.RoleResponse{}, nil
	}
	return &dto.RoleResponse{Role: user.Role}, nil
}

// ListExcept lista todas las cuentas menos la del propio llamante.
func (uc *UserUseCase) ListExcept(ctx context.Context, callerEmail string) ([]dto.UserResponse, error) {
	users, err := uc.repo.ListExcept(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// UpdateRole fija el rol indicado y marca la cuenta como verificada.
// Devuelve ErrUserNotFound si el email no existe.
func (uc *UserUseCase) UpdateRole(ctx context.Context, email string, in dto.UpdateRoleRequest) error {
	if in.Role != entity.RoleCustomer && in.Role != entity.RoleSeller && in.Role != entity.RoleAdmin {
		return domain.ErrInvalidInput
	}
	ok, err := uc.repo.UpdateRole(ctx, email, in.Role, entity.StatusVerified)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}

// RequestSeller marca la cuenta como "requested" para que un admin la apruebe.
func (uc *UserUseCase) RequestSeller(ctx context.Context, email string) error {
	ok, err := uc.repo.UpdateStatus(ctx, email, entity.StatusRequested)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Email:     u.Email,
		Name:      u.Name,
		Image:     u.Image,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}
