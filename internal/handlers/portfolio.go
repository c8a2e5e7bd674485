package handlers

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/promarket/promarket-server/internal/apperr"
	"github.com/promarket/promarket-server/internal/models"
	"github.com/promarket/promarket-server/internal/store"
)

const maxPortfolioPhotos = 10

type PortfolioHandler struct {
	Store     *store.Store
	UploadDir string
}

func NewPortfolioHandler(st *store.Store, uploadDir string) *PortfolioHandler {
	return &PortfolioHandler{Store: st, UploadDir: uploadDir}
}

// ListForPro is public: one pro's portfolio items.
func (h *PortfolioHandler) ListForPro(c *fiber.Ctx) error {
	var items []models.PortfolioItem
	h.Store.View(func(doc *store.Document) {
		items = doc.PortfolioForPro(c.Params("proId"))
	})
	return ok(c, items)
}

// Create adds a portfolio item with up to 10 uploaded photos. Pro role is
// enforced by route middleware.
func (h *PortfolioHandler) Create(c *fiber.Ctx) error {
	userID, _, okAuth := currentUser(c)
	if !okAuth {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	title := c.FormValue("title")
	if title == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Title is required"})
	}

	var photos []string
	if form, err := c.MultipartForm(); err == nil {
		files := form.File["photos"]
		if len(files) > maxPortfolioPhotos {
			files = files[:maxPortfolioPhotos]
		}
		if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
			log.Error().Err(err).Msg("portfolio: create upload dir")
			return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to store photos"})
		}
		for _, file := range files {
			filename := uuid.New().String() + filepath.Ext(file.Filename)
			if err := c.SaveFile(file, filepath.Join(h.UploadDir, filename)); err != nil {
				log.Error().Err(err).Str("file", file.Filename).Msg("portfolio: save photo")
				continue
			}
			photos = append(photos, filename)
		}
	}
	if photos == nil {
		photos = []string{}
	}

	item := models.PortfolioItem{
		ID:          uuid.New().String(),
		ProID:       userID,
		Title:       title,
		Description: c.FormValue("description"),
		Photos:      photos,
		CreatedAt:   time.Now(),
	}

	if err := h.Store.Update(func(doc *store.Document) error {
		doc.Portfolio = append(doc.Portfolio, item)
		return nil
	}); err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

// Delete removes the caller's own portfolio item.
func (h *PortfolioHandler) Delete(c *fiber.Ctx) error {
	userID, _, okAuth := currentUser(c)
	if !okAuth {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	id := c.Params("id")
	err := h.Store.Update(func(doc *store.Document) error {
		for i := range doc.Portfolio {
			if doc.Portfolio[i].ID != id {
				continue
			}
			if doc.Portfolio[i].ProID != userID {
				return apperr.Forbidden("not your portfolio item")
			}
			doc.Portfolio = append(doc.Portfolio[:i], doc.Portfolio[i+1:]...)
			return nil
		}
		return apperr.NotFound("portfolio item not found")
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
