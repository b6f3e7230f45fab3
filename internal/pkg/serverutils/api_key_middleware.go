package serverutils

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// ApiKeyMiddleware builds the guard for the batch-trigger endpoints. The
// scheduler and the admin tools send the shared key in X-Api-Key; everything
// else is rejected. An empty configured key locks the routes entirely.
func ApiKeyMiddleware(expectedKey string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if expectedKey == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "admin api key not configured"))
		}

		provided := ctx.Get("X-Api-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expectedKey)) != 1 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "invalid api key"))
		}
		return ctx.Next()
	}
}
