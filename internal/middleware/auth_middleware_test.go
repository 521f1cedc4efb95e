package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekinokr/eventmate-backend/pkg/jwt"
)

func newTestApp(tokens *jwt.TokenService) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthRequired(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("userID"),
			"role":    c.Locals("userRole"),
		})
	})
	return app
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	app := newTestApp(jwt.NewTokenService("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredMalformedToken(t *testing.T) {
	app := newTestApp(jwt.NewTokenService("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(TokenHeader, "garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredForeignToken(t *testing.T) {
	token, err := jwt.NewTokenService("other-secret").GenerateToken("64f1c2a9e4b0d5a1b2c3d4e5", "user")
	require.NoError(t, err)

	app := newTestApp(jwt.NewTokenService("test-secret"))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(TokenHeader, token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredValidToken(t *testing.T) {
	tokens := jwt.NewTokenService("test-secret")
	token, err := tokens.GenerateToken("64f1c2a9e4b0d5a1b2c3d4e5", "organizer")
	require.NoError(t, err)

	app := newTestApp(tokens)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(TokenHeader, token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "64f1c2a9e4b0d5a1b2c3d4e5")
	assert.Contains(t, string(body), "organizer")
}
