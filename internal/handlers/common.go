package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/promarket/promarket-server/internal/apperr"
)

// currentUser pulls the authenticated user id (and display name) that the
// JWT middleware attached to locals.
func currentUser(c *fiber.Ctx) (id, name string, ok bool) {
	id, _ = c.Locals("userId").(string)
	name, _ = c.Locals("userName").(string)
	return id, name, id != ""
}

// fail renders a service-layer error with the taxonomy status mapping.
// Errors outside the taxonomy become a 500.
func fail(c *fiber.Ctx, err error) error {
	status := apperr.HTTPStatus(err)
	body := fiber.Map{
		"success": false,
		"message": err.Error(),
	}
	if kind := apperr.KindOf(err); kind != "" {
		body["error"] = string(kind)
	} else {
		body["message"] = "internal server error"
	}
	return c.Status(status).JSON(body)
}

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}
