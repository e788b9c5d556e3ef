package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/plantnet-api/internal/application/dto"
	"github.com/jhoicas/plantnet-api/internal/application/usecase"
	"github.com/jhoicas/plantnet-api/internal/domain"
)

// UserHandler maneja las peticiones HTTP de cuentas.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Upsert godoc
// @Summary      Registrar o refrescar un usuario por email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertUserRequest  true  "email, name, image"
// @Success      200   {object}  dto.UpsertUserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	out, err := h.uc.Upsert(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetRole godoc
// @Summary      Consultar el rol almacenado de un usuario
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "email del usuario"
// @Success      200    {object}  dto.RoleResponse
// @Router       /user/role/{email} [get]
func (h *UserHandler) GetRole(c *fiber.Ctx) error {
	out, err := h.uc.GetRole(c.Context(), c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar todos los usuarios excepto el llamante (solo admin)
// @Tags         users
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /allUsers [get]
func (h *UserHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListExcept(c.Context(), GetEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateRole godoc
// @Summary      Cambiar el rol de un usuario y marcarlo verificado (solo admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  path  string  true  "email del usuario"
// @Param        body   body  dto.UpdateRoleRequest  true  "rol nuevo"
// @Success      200    {object}  dto.SuccessResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /update/user/role/{email} [patch]
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.UpdateRole(c.Context(), c.Params("email"), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rol desconocido"})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// BecomeSeller godoc
// @Summary      Solicitar convertirse en vendedor (marca status "requested")
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "email del usuario"
// @Success      200    {object}  dto.SuccessResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /become/seller/{email} [patch]
func (h *UserHandler) BecomeSeller(c *fiber.Ctx) error {
	err := h.uc.RequestSeller(c.Context(), c.Params("email"))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
