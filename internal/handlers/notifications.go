package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/promarket/promarket-server/internal/realtime"
	"github.com/promarket/promarket-server/internal/services/notify"
	"github.com/promarket/promarket-server/internal/utils"
)

type NotificationHandler struct {
	Fanout    *notify.Fanout
	Hub       *realtime.Hub
	JWTSecret string
}

func NewNotificationHandler(fanout *notify.Fanout, hub *realtime.Hub, jwtSecret string) *NotificationHandler {
	return &NotificationHandler{Fanout: fanout, Hub: hub, JWTSecret: jwtSecret}
}

// List returns the caller's unread notifications.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID, _, okAuth := currentUser(c)
	if !okAuth {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	return ok(c, h.Fanout.ListUnread(userID))
}

// MarkRead acknowledges one notification. Someone else's notification is a
// 404, same as a missing one.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, _, okAuth := currentUser(c)
	if !okAuth {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	if err := h.Fanout.Acknowledge(c.Params("id"), userID); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// WebSocketHandler keeps a push connection open for one user. The token
// travels as a query param because browsers cannot set headers on websocket
// upgrades.
func (h *NotificationHandler) WebSocketHandler(c *websocket.Conn) {
	claims, err := utils.ParseJWT(h.JWTSecret, c.Query("token"))
	if err != nil {
		log.Debug().Err(err).Msg("websocket: rejected token")
		c.Close()
		return
	}

	client := &realtime.Client{
		ID:     uuid.New().String(),
		UserID: claims.UserID,
		Conn:   realtime.NewWebSocketConn(c),
		Send:   make(chan []byte, 256),
	}

	h.Hub.RegisterClient(client)
	defer h.Hub.UnregisterClient(client)

	go func() {
		for msg := range client.Send {
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Debug().Err(err).Msg("websocket: write")
				return
			}
		}
	}()

	// drain client frames to keep the connection alive
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
