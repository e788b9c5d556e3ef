package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/plantnet-api/internal/application/dto"
	"github.com/jhoicas/plantnet-api/internal/application/usecase"
	"github.com/jhoicas/plantnet-api/internal/domain"
	"github.com/jhoicas/plantnet-api/internal/domain/entity"
)

// Idempotencia del alta: el segundo POST con el mismo email no crea duplicado,
// solo refresca last_login.
func TestUserUpsert_SegundaLlamadaRefrescaLastLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	first, err := uc.Upsert(ctx, dto.UpsertUserRequest{Email: "a@x.com", Name: "Ana"})
	require.NoError(t, err)
	assert.True(t, first.Inserted, "la primera llamada debe insertar")
	assert.Equal(t, entity.RoleCustomer, first.User.Role, "rol por defecto customer")

	firstLogin := first.User.LastLogin
	createdAt := first.User.CreatedAt

	second, err := uc.Upsert(ctx, dto.UpsertUserRequest{Email: "a@x.com", Name: "Ana"})
	require.NoError(t, err)
	assert.False(t, second.Inserted, "la segunda llamada no debe insertar")
	assert.Equal(t, createdAt, second.User.CreatedAt, "created_at no cambia")
	assert.False(t, second.User.LastLogin.Before(firstLogin), "last_login se refresca")

	n, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "único registro por email")
}

func TestUserUpsert_SinEmail_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	_, err := uc.Upsert(context.Background(), dto.UpsertUserRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El rol de un usuario inexistente queda vacío: la ruta no falla (contrato heredado).
func TestUserGetRole_UsuarioInexistente_RolVacio(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	out, err := uc.GetRole(context.Background(), "nadie@x.com")
	require.NoError(t, err)
	assert.Empty(t, out.Role)
}

func TestUserUpdateRole_MarcaVerificado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.Upsert(ctx, dto.UpsertUserRequest{Email: "s@x.com"})
	require.NoError(t, err)

	require.NoError(t, uc.UpdateRole(ctx, "s@x.com", dto.UpdateRoleRequest{Role: entity.RoleSeller}))

	u, err := repo.GetByEmail(ctx, "s@x.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, u.Role)
	assert.Equal(t, entity.StatusVerified, u.Status)
}

func TestUserUpdateRole_UsuarioInexistente_Retorna404(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	err := uc.UpdateRole(context.Background(), "nadie@x.com", dto.UpdateRoleRequest{Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserUpdateRole_RolDesconocido_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	err := uc.UpdateRole(context.Background(), "a@x.com", dto.UpdateRoleRequest{Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserRequestSeller_MarcaRequested(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.Upsert(ctx, dto.UpsertUserRequest{Email: "c@x.com"})
	require.NoError(t, err)

	require.NoError(t, uc.RequestSeller(ctx, "c@x.com"))

	u, err := repo.GetByEmail(ctx, "c@x.com")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRequested, u.Status)
	assert.Equal(t, entity.RoleCustomer, u.Role, "solicitar no cambia el rol")
}

// El listado del panel admin excluye al propio llamante.
func TestUserListExcept_ExcluyeAlLlamante(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	for _, email := range []string{"admin@x.com", "b@x.com", "c@x.com"} {
		_, err := uc.Upsert(ctx, dto.UpsertUserRequest{Email: email})
		require.NoError(t, err)
	}

	out, err := uc.ListExcept(ctx, "admin@x.com")
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, u := range out {
		assert.NotEqual(t, "admin@x.com", u.Email)
	}
}
