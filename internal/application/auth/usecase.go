// Package auth contiene el caso de uso de emisión del token de sesión.
// No hay password en este sistema: la identidad llega verificada desde el
// frontend y el backend solo emite una credencial firmada con el email.
package auth

import (
	"github.com/jhoicas/plantnet-api/internal/application/dto"
	"github.com/jhoicas/plantnet-api/internal/domain"
	"github.com/jhoicas/plantnet-api/pkg/jwt"
)

// JWTConfig configuración para la generación de tokens de sesión.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// AuthUseCase emite tokens de sesión firmados. La verificación vive en
// pkg/jwt y la política de cookie en la capa HTTP.
type AuthUseCase struct {
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{jwtCfg: jwtCfg}
}

// IssueToken genera el token de sesión para el email indicado.
// El token lleva solo identidad; el rol se consulta en DB por petición.
func (uc *AuthUseCase) IssueToken(in dto.TokenRequest) (string, error) {
	if in.Email == "" {
		return "", domain.ErrInvalidInput
	}
	return jwt.Generate(uc.jwtCfg.Secret, in.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
}
