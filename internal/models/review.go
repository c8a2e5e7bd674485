package models

import "time"

// Review is a client's 1-5 rating of a completed order. At most one review
// exists per order. The pro may attach a reply.
type Review struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId"`
	FromUserID string    `json:"fromUserId"`
	ToUserID   string    `json:"toUserId"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	Reply      string    `json:"reply,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
