// Package reviews handles review submission and pro replies. Submission
// shares the rating aggregator with order completion so the two paths can
// never drift apart.
package reviews

import (
	"time"

	"github.com/google/uuid"

	"github.com/promarket/promarket-server/internal/apperr"
	"github.com/promarket/promarket-server/internal/models"
	"github.com/promarket/promarket-server/internal/rating"
	"github.com/promarket/promarket-server/internal/services/notify"
	"github.com/promarket/promarket-server/internal/store"
)

type Service struct {
	Store  *store.Store
	Notify *notify.Fanout
}

func NewService(st *store.Store, fanout *notify.Fanout) *Service {
	return &Service{Store: st, Notify: fanout}
}

// Submit creates the single review an order may receive. Preconditions are
// checked in a fixed order; the first failure determines the error: the
// order must exist (NotFound), belong to the caller (Forbidden), be
// completed (InvalidState) and be unreviewed (Conflict).
func (s *Service) Submit(clientID, orderID string, ratingVal int, text string) (models.Review, error) {
	var created models.Review
	var pushed models.Notification

	err := s.Store.Update(func(doc *store.Document) error {
		o := doc.FindOrder(orderID)
		if o == nil {
			return apperr.NotFound("order not found")
		}
		if o.ClientID != clientID {
			return apperr.Forbidden("not your order")
		}
		if o.Status != models.OrderStatusCompleted {
			return apperr.InvalidState("order is not completed yet")
		}
		if doc.ReviewForOrder(orderID) != nil {
			return apperr.Conflict("a review for this order already exists")
		}

		review := models.Review{
			ID:         uuid.New().String(),
			OrderID:    orderID,
			FromUserID: clientID,
			ToUserID:   o.ProID,
			Rating:     ratingVal,
			Text:       text,
			CreatedAt:  time.Now(),
		}
		doc.Reviews = append(doc.Reviews, review)

		if pro := doc.FindUser(o.ProID); pro != nil {
			pro.Rating, pro.RatingCount = rating.Apply(pro.Rating, pro.RatingCount, ratingVal)
		}

		pushed = s.Notify.Record(doc, o.ProID, models.NotifNewReview, models.NotificationData{
			OrderID: o.ID,
			Rating:  ratingVal,
			Text:    text,
		})

		created = review
		return nil
	})
	if err != nil {
		return models.Review{}, err
	}

	s.Notify.Publish(pushed)
	return created, nil
}

// Reply sets the pro's answer on a review. Only the reviewed pro may write
// it; a repeated reply overwrites the previous one (last write wins).
func (s *Service) Reply(reviewID, proID, replyText string) (models.Review, error) {
	var updated models.Review

	err := s.Store.Update(func(doc *store.Document) error {
		r := doc.FindReview(reviewID)
		if r == nil {
			return apperr.NotFound("review not found")
		}
		if r.ToUserID != proID {
			return apperr.Forbidden("not your review")
		}
		r.Reply = replyText
		updated = *r
		return nil
	})
	if err != nil {
		return models.Review{}, err
	}
	return updated, nil
}

// ReviewWithClient is the public review shape: the reviewer's display name
// is resolved server-side.
type ReviewWithClient struct {
	models.Review
	Client string `json:"client"`
}

// ListForPro returns a pro's reviews with reviewer names resolved.
func (s *Service) ListForPro(proID string) []ReviewWithClient {
	out := []ReviewWithClient{}
	s.Store.View(func(doc *store.Document) {
		for _, r := range doc.ReviewsForPro(proID) {
			name := "Anonymous"
			if u := doc.FindUser(r.FromUserID); u != nil {
				name = u.Name
			}
			out = append(out, ReviewWithClient{Review: r, Client: name})
		}
	})
	return out
}
