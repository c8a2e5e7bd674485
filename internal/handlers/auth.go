package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/promarket/promarket-server/internal/models"
	"github.com/promarket/promarket-server/internal/store"
	"github.com/promarket/promarket-server/internal/utils"
)

type AuthHandler struct {
	Store     *store.Store
	JWTSecret string
	Expires   int
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login signs a client in, creating the account on first visit: an unknown
// email becomes a fresh client user whose name is derived from the email.
// Known accounts must present the matching password.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "email and password are required",
		})
	}

	var user models.User
	found := false
	h.Store.View(func(doc *store.Document) {
		if u := doc.FindUserByEmail(email); u != nil {
			user = *u
			found = true
		}
	})

	if !found {
		hash, err := utils.HashPassword(password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "failed to process password",
			})
		}
		user = models.User{
			ID:           uuid.New().String(),
			Role:         models.RoleClient,
			Name:         strings.SplitN(email, "@", 2)[0],
			Email:        email,
			PasswordHash: hash,
			Favorites:    []string{},
			CreatedAt:    time.Now(),
		}
		if err := h.Store.Update(func(doc *store.Document) error {
			// re-check under the write lock, another request may have
			// registered the same email meanwhile
			if u := doc.FindUserByEmail(email); u != nil {
				user = *u
				return nil
			}
			doc.Users = append(doc.Users, user)
			return nil
		}); err != nil {
			log.Error().Err(err).Msg("login: create user")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "failed to create account",
			})
		}
	}

	if user.PasswordHash != "" && !utils.CheckPassword(user.PasswordHash, password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "wrong password",
		})
	}

	token, err := utils.SignJWT(h.JWTSecret, user.ID, user.Name, string(user.Role), h.Expires)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "failed to sign token",
		})
	}

	return ok(c, fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":   user.ID,
			"name": user.Name,
			"role": user.Role,
		},
	})
}
