package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/auth"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/pedidos-api/internal/interfaces/http"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func newAuthUC(t *testing.T) (*auth.AuthUseCase, string) {
	t.Helper()
	uc := auth.NewAuthUseCase(memory.NewStore().Users(), auth.JWTConfig{Secret: testJWTSecret, TTL: time.Hour, Issuer: "pedidos-api-test"})
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Nombre: "Ana", Apellido: "Ruiz", Email: "ana@x.com", Password: "secreto1"})
	require.NoError(t, err)
	tok, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@x.com", Password: "secreto1"})
	require.NoError(t, err)
	return uc, tok.Token
}

// buildTestApp expone /me (sesión opcional) y /protected (sesión obligatoria).
func buildTestApp(uc *auth.AuthUseCase) *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.SessionMiddleware(uc), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"seller":  auth.SellerID(c.UserContext()),
		})
	})
	app.Get("/protected", apphttp.SessionMiddleware(uc), apphttp.RequireSession(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readMe(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestSessionMiddleware_BearerToken(t *testing.T) {
	uc, tok := newAuthUC(t)
	body := readMe(t, doRequest(t, buildTestApp(uc), "/me", "Bearer "+tok))

	assert.NotEmpty(t, body["user_id"])
	assert.Equal(t, body["user_id"], body["seller"], "la sesión debe llegar al UserContext")
}

func TestSessionMiddleware_TokenSinPrefijo(t *testing.T) {
	uc, tok := newAuthUC(t)
	body := readMe(t, doRequest(t, buildTestApp(uc), "/me", tok))

	assert.NotEmpty(t, body["user_id"])
}

func TestSessionMiddleware_SinHeaderEsAnonimo(t *testing.T) {
	uc, _ := newAuthUC(t)
	body := readMe(t, doRequest(t, buildTestApp(uc), "/me", ""))

	assert.Empty(t, body["user_id"])
	assert.Empty(t, body["seller"])
}

func TestSessionMiddleware_TokenInvalidoEsAnonimo(t *testing.T) {
	uc, _ := newAuthUC(t)
	body := readMe(t, doRequest(t, buildTestApp(uc), "/me", "Bearer token.invalido.aqui"))

	assert.Empty(t, body["user_id"])
}

func TestRequireSession(t *testing.T) {
	uc, tok := newAuthUC(t)
	app := buildTestApp(uc)

	resp := doRequest(t, app, "/protected", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, "/protected", "Bearer "+tok)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
