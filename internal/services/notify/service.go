// Package notify is the notification fan-out: lifecycle transitions and
// review creation record per-recipient notifications inside the same store
// update that commits the triggering write, then push them to any live
// listeners after the commit.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/promarket/promarket-server/internal/apperr"
	"github.com/promarket/promarket-server/internal/models"
	"github.com/promarket/promarket-server/internal/realtime"
	"github.com/promarket/promarket-server/internal/store"
)

type Fanout struct {
	Store *store.Store
	Hub   *realtime.Hub
	RDB   *redis.Client
}

func NewFanout(st *store.Store, hub *realtime.Hub, rdb *redis.Client) *Fanout {
	return &Fanout{Store: st, Hub: hub, RDB: rdb}
}

// Record appends a notification to the document. It must be called inside a
// store.Update closure so the record commits atomically with the write that
// triggered it. Delivery is at most once: present in the store when the
// triggering write committed, nothing more.
func (f *Fanout) Record(doc *store.Document, userID string, typ models.NotificationType, data models.NotificationData) models.Notification {
	n := models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      typ,
		Data:      data,
		Read:      false,
		CreatedAt: time.Now(),
	}
	doc.Notifications = append(doc.Notifications, n)
	return n
}

// Publish pushes committed notifications to websocket listeners and, when
// Redis is configured, to the notifications:<userId> channel. Both paths are
// advisory; polling the store remains the source of truth.
func (f *Fanout) Publish(ns ...models.Notification) {
	for _, n := range ns {
		if f.Hub != nil {
			f.Hub.SendToUser(n.UserID, map[string]interface{}{
				"type":         "notification",
				"notification": n,
			})
		}
		if f.RDB != nil {
			payload, err := json.Marshal(n)
			if err != nil {
				log.Error().Err(err).Msg("notify: marshal for redis")
				continue
			}
			if err := f.RDB.Publish(context.Background(), "notifications:"+n.UserID, payload).Err(); err != nil {
				log.Warn().Err(err).Str("user", n.UserID).Msg("notify: redis publish failed")
			}
		}
	}
}

// ListUnread returns the user's unread notifications in store order.
func (f *Fanout) ListUnread(userID string) []models.Notification {
	var out []models.Notification
	f.Store.View(func(doc *store.Document) {
		out = doc.UnreadFor(userID)
	})
	return out
}

// Acknowledge marks a notification read. A notification addressed to someone
// else is reported as not found, same as a missing one.
func (f *Fanout) Acknowledge(id, callerID string) error {
	return f.Store.Update(func(doc *store.Document) error {
		n := doc.FindNotification(id)
		if n == nil || n.UserID != callerID {
			return apperr.NotFound("notification not found")
		}
		n.Read = true
		return nil
	})
}
