package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/promarket/promarket-server/internal/services/orders"
)

type OrderHandler struct {
	Svc *orders.Service
}

func NewOrderHandler(svc *orders.Service) *OrderHandler {
	return &OrderHandler{Svc: svc}
}

type CreateOrderRequest struct {
	ProID   string `json:"proId"`
	ProName string `json:"proName"`
	Price   int    `json:"price"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Comment string `json:"comment"`
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	userID, userName, okAuth := currentUser(c)
	if !okAuth {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	order, err := h.Svc.Create(userID, userName, orders.CreateParams{
		ProID:   req.ProID,
		ProName: req.ProName,
		Price:   req.Price,
		Date:    req.Date,
		Time:    req.Time,
		Comment: req.Comment,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    order,
	})
}

type CompleteOrderRequest struct {
	Success      bool   `json:"success"`
	Rating       int    `json:"rating"`
	Review       string `json:"review"`
	CancelReason string `json:"cancelReason"`
}

func (h *OrderHandler) Complete(c *fiber.Ctx) error {
	userID, _, okAuth := currentUser(c)
	if !okAuth {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var req CompleteOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	err := h.Svc.Complete(c.Params("id"), userID, orders.CompleteParams{
		Success:      req.Success,
		Rating:       req.Rating,
		Review:       req.Review,
		CancelReason: req.CancelReason,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// MyOrders lists the caller's orders, each annotated with reviewGiven. The
// client applies its own (reverse-chronological) ordering.
func (h *OrderHandler) MyOrders(c *fiber.Ctx) error {
	userID, _, okAuth := currentUser(c)
	if !okAuth {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	return ok(c, h.Svc.ListByClient(userID))
}
