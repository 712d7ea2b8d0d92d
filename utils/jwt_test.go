package utils

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	app.Get("/admin", AuthMiddleware, AdminMiddleware, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newAuthTestApp()

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token sets user_id", func(t *testing.T) {
		token, err := GenerateToken("user-42", "user", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "user-42", string(body))
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token, err := GenerateToken("user-42", "user", -time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token, err := GenerateToken("user-42", "user", time.Hour)
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "different-secret")
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAdminMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newAuthTestApp()

	t.Run("non-admin gets 403 not 404", func(t *testing.T) {
		token, err := GenerateToken("user-42", "user", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := GenerateToken("admin-1", "admin", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
