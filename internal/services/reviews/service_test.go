package reviews

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promarket/promarket-server/internal/apperr"
	"github.com/promarket/promarket-server/internal/models"
	"github.com/promarket/promarket-server/internal/services/notify"
	"github.com/promarket/promarket-server/internal/store"
)

func newService(t *testing.T, doc store.Document) (*Service, *store.Store) {
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
	return NewService(st, notify.NewFanout(st, nil, nil)), st
}

func fixture(status models.OrderStatus) store.Document {
	return store.Document{
		Users: []models.User{
			{ID: "c1", Role: models.RoleClient, Name: "Anna"},
			{ID: "p1", Role: models.RolePro, Name: "Boris", Rating: 4.0, RatingCount: 4},
		},
		Orders: []models.Order{{
			ID:       "o1",
			ClientID: "c1",
			ProID:    "p1",
			Status:   status,
		}},
	}
}

func TestSubmit(t *testing.T) {
	svc, st := newService(t, fixture(models.OrderStatusCompleted))

	review, err := svc.Submit("c1", "o1", 5, "excellent work")
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, "o1", review.OrderID)
	assert.Equal(t, "c1", review.FromUserID)
	assert.Equal(t, "p1", review.ToUserID)
	assert.Equal(t, 5, review.Rating)
	assert.Empty(t, review.Reply)

	st.View(func(doc *store.Document) {
		// (4*4 + 5) / 5 = 4.2
		pro := doc.FindUser("p1")
		assert.Equal(t, 4.2, pro.Rating)
		assert.Equal(t, 5, pro.RatingCount)

		require.Len(t, doc.Notifications, 1)
		n := doc.Notifications[0]
		assert.Equal(t, "p1", n.UserID)
		assert.Equal(t, models.NotifNewReview, n.Type)
		assert.Equal(t, "o1", n.Data.OrderID)
		assert.Equal(t, 5, n.Data.Rating)
		assert.Equal(t, "excellent work", n.Data.Text)
	})
}

func TestSubmitTwiceConflicts(t *testing.T) {
	svc, st := newService(t, fixture(models.OrderStatusCompleted))

	_, err := svc.Submit("c1", "o1", 5, "first")
	require.NoError(t, err)

	_, err = svc.Submit("c1", "o1", 1, "second")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	st.View(func(doc *store.Document) {
		require.Len(t, doc.Reviews, 1)
		// the second rating was never applied
		assert.Equal(t, 5, doc.FindUser("p1").RatingCount)
	})
}

func TestSubmitUnknownOrder(t *testing.T) {
	svc, _ := newService(t, fixture(models.OrderStatusCompleted))

	_, err := svc.Submit("c1", "nope", 5, "")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSubmitForeignOrder(t *testing.T) {
	svc, _ := newService(t, fixture(models.OrderStatusCompleted))

	_, err := svc.Submit("someone-else", "o1", 5, "")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestSubmitUnfinishedOrder(t *testing.T) {
	svc, _ := newService(t, fixture(models.OrderStatusInProgress))

	_, err := svc.Submit("c1", "o1", 5, "")
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestSubmitPreconditionOrder(t *testing.T) {
	// ownership is checked before lifecycle state: a stranger reviewing an
	// unfinished order sees Forbidden, not InvalidState
	svc, _ := newService(t, fixture(models.OrderStatusInProgress))

	_, err := svc.Submit("someone-else", "o1", 5, "")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestReply(t *testing.T) {
	doc := fixture(models.OrderStatusCompleted)
	doc.Reviews = []models.Review{{ID: "r1", OrderID: "o1", FromUserID: "c1", ToUserID: "p1", Rating: 5}}
	svc, st := newService(t, doc)

	review, err := svc.Reply("r1", "p1", "thanks!")
	require.NoError(t, err)
	assert.Equal(t, "thanks!", review.Reply)

	// last write wins
	review, err = svc.Reply("r1", "p1", "thank you!")
	require.NoError(t, err)
	assert.Equal(t, "thank you!", review.Reply)

	st.View(func(doc *store.Document) {
		assert.Equal(t, "thank you!", doc.FindReview("r1").Reply)
	})
}

func TestReplyErrors(t *testing.T) {
	doc := fixture(models.OrderStatusCompleted)
	doc.Reviews = []models.Review{{ID: "r1", OrderID: "o1", FromUserID: "c1", ToUserID: "p1", Rating: 5}}
	svc, _ := newService(t, doc)

	_, err := svc.Reply("nope", "p1", "hi")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Reply("r1", "c1", "hi")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestListForPro(t *testing.T) {
	doc := fixture(models.OrderStatusCompleted)
	doc.Reviews = []models.Review{
		{ID: "r1", OrderID: "o1", FromUserID: "c1", ToUserID: "p1", Rating: 5},
		{ID: "r2", OrderID: "o2", FromUserID: "deleted-user", ToUserID: "p1", Rating: 3},
		{ID: "r3", OrderID: "o3", FromUserID: "c1", ToUserID: "other-pro", Rating: 1},
	}
	svc, _ := newService(t, doc)

	list := svc.ListForPro("p1")
	require.Len(t, list, 2)
	assert.Equal(t, "Anna", list[0].Client)
	assert.Equal(t, "Anonymous", list[1].Client)
}
