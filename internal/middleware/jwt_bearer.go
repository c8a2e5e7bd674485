package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/promarket/promarket-server/internal/utils"
)

// JWTFromHeader authenticates requests via "Authorization: Bearer <token>"
// and stashes the parsed claims in locals.
func JWTFromHeader(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			return fiber.ErrUnauthorized
		}

		claims, err := utils.ParseJWT(secret, tokenStr)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}
