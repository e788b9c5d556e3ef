package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/plantnet-api/internal/application/dto"
	"github.com/jhoicas/plantnet-api/pkg/jwt"
)

// CookieName nombre de la cookie HTTP-only que transporta el token de sesión.
// La credencial viaja siempre en cookie, nunca en header, para quedar fuera
// del alcance de los scripts del cliente.
const CookieName = "token"

// LocalEmail key de Fiber locals donde queda la identidad autenticada.
const LocalEmail = "email"

// AuthMiddleware valida el token de sesión de la cookie y deja el email
// decodificado en c.Locals. Corta con 401 si la cookie falta o el token es
// inválido o venció. Esta etapa nunca toca la base de datos.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(CookieName)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "cookie de sesión requerida"})
		}
		email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "sesión expirada"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// GetEmail devuelve el email autenticado del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
