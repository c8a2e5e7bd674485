package models

import "time"

type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in-progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order is a booking of a pro by a client. ProName and Price are snapshots
// taken at creation time so later profile edits do not rewrite history.
type Order struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	ProID    string `json:"proId"`
	ProName  string `json:"proName"`
	Price    int    `json:"price"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Comment  string `json:"comment,omitempty"`

	Status        OrderStatus `json:"status"`
	CancelReason  string      `json:"cancelReason,omitempty"`
	PaymentStatus string      `json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
}

// Finished reports whether the order has left the in-progress state.
// Finished orders never transition again.
func (o *Order) Finished() bool {
	return o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled
}
