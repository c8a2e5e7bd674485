package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/promarket/promarket-server/internal/apperr"
	"github.com/promarket/promarket-server/internal/store"
)

type FavoriteHandler struct {
	Store *store.Store
}

func NewFavoriteHandler(st *store.Store) *FavoriteHandler {
	return &FavoriteHandler{Store: st}
}

// Toggle adds the pro to the caller's favorites, or removes it when already
// present, and returns the updated list.
func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	userID, _, okAuth := currentUser(c)
	if !okAuth {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	proID := c.Params("proId")
	var favorites []string

	err := h.Store.Update(func(doc *store.Document) error {
		u := doc.FindUser(userID)
		if u == nil {
			return apperr.NotFound("user not found")
		}

		idx := -1
		for i, id := range u.Favorites {
			if id == proID {
				idx = i
				break
			}
		}
		if idx == -1 {
			u.Favorites = append(u.Favorites, proID)
		} else {
			u.Favorites = append(u.Favorites[:idx], u.Favorites[idx+1:]...)
		}

		favorites = append([]string{}, u.Favorites...)
		return nil
	})
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{"favorites": favorites})
}
