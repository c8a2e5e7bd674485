package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type promo struct {
	Code     string
	Discount int
}

// demo promo table, mirrors the seeded marketing campaign
var promos = []promo{
	{Code: "WELCOME10", Discount: 10},
	{Code: "SUMMER20", Discount: 20},
}

type PromoHandler struct{}

type ApplyPromoRequest struct {
	Code string `json:"code"`
}

// Apply validates a promo code. An unknown code is not an error, just
// valid=false, so the checkout flow can render it inline.
func (h *PromoHandler) Apply(c *fiber.Ctx) error {
	var req ApplyPromoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	for _, p := range promos {
		if p.Code == code {
			return c.JSON(fiber.Map{"valid": true, "discount": p.Discount})
		}
	}

	return c.JSON(fiber.Map{"valid": false, "msg": "Promo code not found"})
}
