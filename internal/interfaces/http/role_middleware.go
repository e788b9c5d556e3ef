package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/plantnet-api/internal/application/dto"
	"github.com/jhoicas/plantnet-api/internal/domain/entity"
)

// roleLookup es el contrato mínimo que necesita la puerta de rol para leer el
// rol almacenado. Lo implementa postgres.UserRepo; la interfaz local evita el
// import del paquete de infraestructura.
type roleLookup interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// RequireRole devuelve un middleware que permite continuar solo si el rol
// ALMACENADO del usuario autenticado es exactamente requiredRole. Debe usarse
// DESPUÉS de AuthMiddleware (necesita LocalEmail).
//
// El rol se relee de la base de datos en cada petición: el token solo prueba
// identidad y cualquier claim de autorización embebido no se considera.
//
// Comportamiento:
//   - 401 Unauthorized → no hay identidad en el contexto.
//   - 403 Forbidden    → usuario inexistente o rol distinto al requerido.
//   - 500 Internal     → fallo de infraestructura al consultar la DB.
func RequireRole(requiredRole string, lookup roleLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := GetEmail(c)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "identidad no encontrada en el contexto",
			})
		}

		user, err := lookup.GetByEmail(c.Context(), email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code:    "INTERNAL",
				Message: "no se pudo verificar el rol",
			})
		}

		if user == nil || user.Role != requiredRole {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "se requiere rol '" + requiredRole + "'",
			})
		}

		return c.Next()
	}
}
