// Package jwt implementa el token de sesión: credencial firmada HS256 que
// embebe únicamente la identidad (email) y la expiración. El token nunca
// transporta el rol; la autorización se resuelve contra la base de datos
// en cada petición.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores distinguibles por el middleware de autenticación.
var (
	// ErrTokenExpired el token está bien firmado pero ya venció.
	ErrTokenExpired = errors.New("token de sesión expirado")
	// ErrTokenInvalid firma incorrecta, token malformado o claims inválidos.
	ErrTokenInvalid = errors.New("token de sesión inválido")
)

// Claims claims estándar JWT más el email del usuario.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Generate genera un token de sesión firmado para el email indicado.
// expDays es la vigencia en días (política "remember me": 365 por defecto en config).
func Generate(secret, email, issuer string, expDays int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if email == "" {
		return "", fmt.Errorf("jwt: email vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expDays) * 24 * time.Hour)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve el email embebido.
// Retorna ErrTokenExpired si venció y ErrTokenInvalid en cualquier otro fallo.
func Parse(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return "", ErrTokenInvalid
	}
	return claims.Email, nil
}
