package dto

import "time"

// TokenRequest entrada para emitir el token de sesión (POST /jwt).
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpsertUserRequest entrada del alta/refresh de usuario en cada inicio de sesión.
type UpsertUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,max=200"`
	Image string `json:"image" validate:"omitempty,max=500"`
}

// UpdateRoleRequest entrada del cambio de rol por un admin.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer seller admin"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Image     string    `json:"image,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}

// RoleResponse salida de GET /user/role/:email. Role queda vacío si el
// usuario no existe (la ruta no falla en ese caso, igual que el contrato original).
type RoleResponse struct {
	Role string `json:"role,omitempty"`
}

// UpsertUserResponse indica si la llamada insertó o solo refrescó last_login.
type UpsertUserResponse struct {
	Inserted bool         `json:"inserted"`
	User     UserResponse `json:"user"`
}
