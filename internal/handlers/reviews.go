package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/promarket/promarket-server/internal/services/reviews"
)

type ReviewHandler struct {
	Svc *reviews.Service
}

func NewReviewHandler(svc *reviews.Service) *ReviewHandler {
	return &ReviewHandler{Svc: svc}
}

// ListForPro is public: reviews of one pro with reviewer names resolved.
func (h *ReviewHandler) ListForPro(c *fiber.Ctx) error {
	return ok(c, h.Svc.ListForPro(c.Params("proId")))
}

type SubmitReviewRequest struct {
	OrderID string `json:"orderId"`
	Rating  int    `json:"rating"`
	Text    string `json:"text"`
}

func (h *ReviewHandler) Submit(c *fiber.Ctx) error {
	userID, _, okAuth := currentUser(c)
	if !okAuth {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var req SubmitReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Rating must be between 1 and 5"})
	}

	review, err := h.Svc.Submit(userID, req.OrderID, req.Rating, req.Text)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    review,
	})
}

type ReplyRequest struct {
	Reply string `json:"reply"`
}

func (h *ReviewHandler) Reply(c *fiber.Ctx) error {
	userID, _, okAuth := currentUser(c)
	if !okAuth {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var req ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	review, err := h.Svc.Reply(c.Params("id"), userID, req.Reply)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, review)
}
