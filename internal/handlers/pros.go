package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/promarket/promarket-server/internal/models"
	"github.com/promarket/promarket-server/internal/store"
)

type ProHandler struct {
	Store *store.Store
}

func NewProHandler(st *store.Store) *ProHandler {
	return &ProHandler{Store: st}
}

// List is the public pro catalog behind the map view. All filters are
// optional query params: cat, maxPrice, minRating, search, verified.
func (h *ProHandler) List(c *fiber.Ctx) error {
	maxPrice, _ := strconv.Atoi(c.Query("maxPrice"))
	minRating, _ := strconv.ParseFloat(c.Query("minRating"), 64)

	filter := store.ProFilter{
		Category:  c.Query("cat"),
		MaxPrice:  maxPrice,
		MinRating: minRating,
		Search:    c.Query("search"),
		Verified:  c.Query("verified") == "true",
	}

	var pros []models.User
	h.Store.View(func(doc *store.Document) {
		pros = doc.Pros(filter)
	})

	return ok(c, pros)
}
