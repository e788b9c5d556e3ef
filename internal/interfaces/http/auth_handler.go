package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/plantnet-api/internal/application/auth"
	"github.com/jhoicas/plantnet-api/internal/application/dto"
)

// AuthHandler emite y limpia la cookie de sesión.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	production bool
	expDays    int
}

// NewAuthHandler construye el handler de auth. En producción la cookie se
// marca Secure con SameSite=None (frontend en otro origen); en desarrollo
// SameSite=Strict sin Secure.
func NewAuthHandler(uc *auth.AuthUseCase, production bool, expDays int) *AuthHandler {
	return &AuthHandler{uc: uc, production: production, expDays: expDays}
}

// IssueToken godoc
// @Summary      Emitir token de sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "email"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var in dto.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	token, err := h.uc.IssueToken(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Cookie(h.sessionCookie(token, time.Now().Add(time.Duration(h.expDays)*24*time.Hour)))
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Logout godoc
// @Summary      Cerrar sesión (limpia la cookie)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Cookie vencida con los mismos atributos para que el navegador la descarte
	c.Cookie(h.sessionCookie("", time.Now().Add(-time.Hour)))
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	sameSite := fiber.CookieSameSiteStrictMode
	if h.production {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    value,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.production,
		SameSite: sameSite,
		Path:     "/",
	}
}
