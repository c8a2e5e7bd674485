package notify

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promarket/promarket-server/internal/apperr"
	"github.com/promarket/promarket-server/internal/models"
	"github.com/promarket/promarket-server/internal/store"
)

func newFanout(t *testing.T, doc store.Document) (*Fanout, *store.Store) {
	t.Helper()
	if doc.SchemaVersion == 0 {
		doc.SchemaVersion = 1
	}
	path := filepath.Join(t.TempDir(), "data.json")
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	st, err := store.Open(path)
	require.NoError(t, err)
	return NewFanout(st, nil, nil), st
}

func TestRecordAndListUnread(t *testing.T) {
	f, st := newFanout(t, store.Document{})

	var first, second models.Notification
	require.NoError(t, st.Update(func(doc *store.Document) error {
		first = f.Record(doc, "u1", models.NotifNewOrder, models.NotificationData{OrderID: "o1", ClientName: "Anna"})
		second = f.Record(doc, "u1", models.NotifOrderCompletedClient, models.NotificationData{OrderID: "o2"})
		f.Record(doc, "u2", models.NotifNewReview, models.NotificationData{OrderID: "o3"})
		return nil
	}))

	unread := f.ListUnread("u1")
	require.Len(t, unread, 2)
	// store order is insertion order
	assert.Equal(t, first.ID, unread[0].ID)
	assert.Equal(t, second.ID, unread[1].ID)
	assert.Equal(t, "Anna", unread[0].Data.ClientName)

	assert.Len(t, f.ListUnread("u2"), 1)
	assert.Empty(t, f.ListUnread("nobody"))
}

func TestAcknowledgeHidesNotification(t *testing.T) {
	f, st := newFanout(t, store.Document{})

	var n models.Notification
	require.NoError(t, st.Update(func(doc *store.Document) error {
		n = f.Record(doc, "u1", models.NotifNewOrder, models.NotificationData{OrderID: "o1"})
		return nil
	}))

	require.NoError(t, f.Acknowledge(n.ID, "u1"))
	assert.Empty(t, f.ListUnread("u1"))

	// acknowledged records stay in the store, flagged read
	st.View(func(doc *store.Document) {
		require.Len(t, doc.Notifications, 1)
		assert.True(t, doc.Notifications[0].Read)
	})
}

func TestAcknowledgeUnknownID(t *testing.T) {
	f, _ := newFanout(t, store.Document{})

	err := f.Acknowledge("nope", "u1")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestAcknowledgeForeignNotification(t *testing.T) {
	f, st := newFanout(t, store.Document{})

	var n models.Notification
	require.NoError(t, st.Update(func(doc *store.Document) error {
		n = f.Record(doc, "u1", models.NotifNewOrder, models.NotificationData{OrderID: "o1"})
		return nil
	}))

	// someone else's notification is indistinguishable from a missing one
	err := f.Acknowledge(n.ID, "u2")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.Len(t, f.ListUnread("u1"), 1)
}

func TestListUnreadNeverReturnsRead(t *testing.T) {
	f, st := newFanout(t, store.Document{})

	var ids []string
	require.NoError(t, st.Update(func(doc *store.Document) error {
		for i := 0; i < 5; i++ {
			n := f.Record(doc, "u1", models.NotifNewOrder, models.NotificationData{OrderID: "o1"})
			ids = append(ids, n.ID)
		}
		return nil
	}))

	require.NoError(t, f.Acknowledge(ids[1], "u1"))
	require.NoError(t, f.Acknowledge(ids[3], "u1"))

	unread := f.ListUnread("u1")
	require.Len(t, unread, 3)
	for _, n := range unread {
		assert.False(t, n.Read)
		assert.NotContains(t, []string{ids[1], ids[3]}, n.ID)
	}
}

func TestPublishWithoutBackendsIsSafe(t *testing.T) {
	f, _ := newFanout(t, store.Document{})

	// no hub, no redis: publish must be a no-op, not a panic
	f.Publish(models.Notification{ID: "n1", UserID: "u1"})
}
