package serverutils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newGuardedApp(key string) *fiber.App {
	app := fiber.New()
	app.Post("/run", ApiKeyMiddleware(key), func(ctx *fiber.Ctx) error {
		return ctx.SendString("ran")
	})
	return app
}

func TestApiKeyMiddlewareAcceptsConfiguredKey(t *testing.T) {
	app := newGuardedApp("s3cret")

	req := httptest.NewRequest("POST", "/run", nil)
	req.Header.Set("X-Api-Key", "s3cret")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestApiKeyMiddlewareRejectsWrongKey(t *testing.T) {
	app := newGuardedApp("s3cret")

	req := httptest.NewRequest("POST", "/run", nil)
	req.Header.Set("X-Api-Key", "guess")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestApiKeyMiddlewareRejectsMissingKey(t *testing.T) {
	app := newGuardedApp("s3cret")

	resp, err := app.Test(httptest.NewRequest("POST", "/run", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestApiKeyMiddlewareLocksRoutesWhenUnconfigured(t *testing.T) {
	app := newGuardedApp("")

	req := httptest.NewRequest("POST", "/run", nil)
	req.Header.Set("X-Api-Key", "")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
