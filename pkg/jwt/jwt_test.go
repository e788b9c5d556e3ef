package jwt_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/plantnet-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "plantnet-api-test"
)

// Round-trip: generar un token para un email y parsearlo debe devolver el mismo email.
func TestJWT_GenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "a@x.com", testIssuer, 365)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestJWT_TokenExpirado_RetornaErrTokenExpired(t *testing.T) {
	// Vigencia de -1 día: el token nace vencido
	tok, err := pkgjwt.Generate(testSecret, "a@x.com", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgjwt.ErrTokenExpired),
		"token vencido debe distinguirse como ErrTokenExpired")
}

func TestJWT_SecretIncorrecto_RetornaErrTokenInvalid(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "a@x.com", testIssuer, 365)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgjwt.ErrTokenInvalid),
		"firma incorrecta debe distinguirse como ErrTokenInvalid")
}

func TestJWT_TokenMalformado_RetornaErrTokenInvalid(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgjwt.ErrTokenInvalid))
}

func TestJWT_EmailVacio_NoGenera(t *testing.T) {
	_, err := pkgjwt.Generate(testSecret, "", testIssuer, 365)
	assert.Error(t, err)
}
