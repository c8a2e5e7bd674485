// Package orders owns the order lifecycle: creation, the one-way
// in-progress -> completed/cancelled transition, and the rating side effects
// of a successful completion.
package orders

import (
	"fmt"
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

type CreateParams struct {
	ProID   string
	ProName string
	Price   int
	Date    string
	Time    string
	Comment string
}

// Create books a pro for the client. The pro does not have to exist; when it
// does, the name/price snapshot is taken from the stored profile instead of
// the caller-supplied values. Any present date/time string is accepted.
func (s *Service) Create(clientID, clientName string, p CreateParams) (models.Order, error) {
	if p.ProID == "" {
		return models.Order{}, apperr.Validation("proId is required")
	}

	var created models.Order
	var pushed models.Notification

	err := s.Store.Update(func(doc *store.Document) error {
		proName, price := p.ProName, p.Price
		if pro := doc.FindUser(p.ProID); pro != nil && pro.Role == models.RolePro {
			proName, price = pro.Name, pro.Price
		}

		order := models.Order{
			ID:            uuid.New().String(),
			ClientID:      clientID,
			ProID:         p.ProID,
			ProName:       proName,
			Price:         price,
			Date:          p.Date,
			Time:          p.Time,
			Comment:       p.Comment,
			Status:        models.OrderStatusInProgress,
			PaymentStatus: "pending",
			CreatedAt:     time.Now(),
		}
		doc.Orders = append(doc.Orders, order)

		pushed = s.Notify.Record(doc, order.ProID, models.NotifNewOrder, models.NotificationData{
			OrderID:    order.ID,
			ClientName: clientName,
		})

		created = order
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	s.Notify.Publish(pushed)
	return created, nil
}

type CompleteParams struct {
	Success      bool
	Rating       int
	Review       string
	CancelReason string
}

// Complete finishes an order one way or the other. Only the order's client
// or pro may call it, a finished order stays finished, and a successful
// completion must carry a 1-5 rating, which is folded into the pro's
// aggregate exactly once.
func (s *Service) Complete(orderID, callerID string, p CompleteParams) error {
	var pushed []models.Notification

	err := s.Store.Update(func(doc *store.Document) error {
		o := doc.FindOrder(orderID)
		if o == nil {
			return apperr.NotFound("order not found")
		}
		if callerID != o.ClientID && callerID != o.ProID {
			return apperr.Forbidden("not a participant of this order")
		}
		if o.Finished() {
			return apperr.InvalidState(fmt.Sprintf("order is already %s", o.Status))
		}

		if p.Success {
			if p.Rating < 1 || p.Rating > 5 {
				return apperr.Validation("a rating of 1-5 is required to complete an order")
			}
			o.Status = models.OrderStatusCompleted

			if pro := doc.FindUser(o.ProID); pro != nil {
				pro.Rating, pro.RatingCount = rating.Apply(pro.Rating, pro.RatingCount, p.Rating)
				pro.CompletedJobs++
			}

			pushed = append(pushed, s.Notify.Record(doc, o.ProID, models.NotifOrderCompleted, models.NotificationData{
				OrderID: o.ID,
				Rating:  p.Rating,
				Review:  p.Review,
			}))
			if o.ClientID != o.ProID {
				pushed = append(pushed, s.Notify.Record(doc, o.ClientID, models.NotifOrderCompletedClient, models.NotificationData{
					OrderID: o.ID,
				}))
			}
		} else {
			o.Status = models.OrderStatusCancelled
			o.CancelReason = p.CancelReason

			pushed = append(pushed, s.Notify.Record(doc, o.ProID, models.NotifOrderCancelled, models.NotificationData{
				OrderID: o.ID,
				Reason:  p.CancelReason,
			}))
			if o.ClientID != o.ProID {
				pushed = append(pushed, s.Notify.Record(doc, o.ClientID, models.NotifOrderCancelledClient, models.NotificationData{
					OrderID: o.ID,
					Reason:  p.CancelReason,
				}))
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.Notify.Publish(pushed...)
	return nil
}

// OrderWithReview annotates an order with whether its review exists.
type OrderWithReview struct {
	models.Order
	ReviewGiven bool `json:"reviewGiven"`
}

// ListByClient returns the client's orders in store order. Any display
// ordering (reverse-chronological in the UI) is up to the caller.
func (s *Service) ListByClient(clientID string) []OrderWithReview {
	out := []OrderWithReview{}
	s.Store.View(func(doc *store.Document) {
		for _, o := range doc.OrdersByClient(clientID) {
			out = append(out, OrderWithReview{
				Order:       o,
				ReviewGiven: doc.ReviewForOrder(o.ID) != nil,
			})
		}
	})
	return out
}
