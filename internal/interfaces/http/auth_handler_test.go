package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/plantnet-api/internal/application/auth"
	apphttp "github.com/jhoicas/plantnet-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/plantnet-api/pkg/jwt"
)

func buildAuthApp(production bool) *fiber.App {
	uc := auth.NewAuthUseCase(auth.JWTConfig{
		Secret:  testJWTSecret,
		ExpDays: testExpDays,
		Issuer:  testIssuer,
	})
	h := apphttp.NewAuthHandler(uc, production, testExpDays)
	app := fiber.New()
	app.Post("/jwt", h.IssueToken)
	app.Get("/logout", h.Logout)
	return app
}

func postJWT(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// POST /jwt deja la cookie HTTP-only con un token verificable que embebe el email.
func TestIssueToken_DejaCookieHTTPOnlyConEmail(t *testing.T) {
	app := buildAuthApp(false)
	resp := postJWT(t, app, `{"email":"a@x.com"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, apphttp.CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly, "la cookie debe ser HTTP-only, invisible a scripts")
	assert.False(t, cookie.Secure, "en desarrollo la cookie no se marca Secure")

	email, err := pkgjwt.Parse(testJWTSecret, cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

// En producción la cookie se marca Secure (SameSite=None para el frontend cross-origin).
func TestIssueToken_ProduccionCookieSecure(t *testing.T) {
	app := buildAuthApp(true)
	resp := postJWT(t, app, `{"email":"a@x.com"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

// Sin email en el cuerpo → HTTP 400.
func TestIssueToken_SinEmail_Retorna400(t *testing.T) {
	app := buildAuthApp(false)
	resp := postJWT(t, app, `{}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// GET /logout vence la cookie para que el navegador la descarte.
func TestLogout_VenceLaCookie(t *testing.T) {
	app := buildAuthApp(false)
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, apphttp.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}
