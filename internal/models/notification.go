package models

import "time"

type NotificationType string

const (
	NotifNewOrder             NotificationType = "new_order"
	NotifOrderCompleted       NotificationType = "order_completed"
	NotifOrderCancelled       NotificationType = "order_cancelled"
	NotifOrderCompletedClient NotificationType = "order_completed_client"
	NotifOrderCancelledClient NotificationType = "order_cancelled_client"
	NotifNewReview            NotificationType = "new_review"
)

// NotificationData is the per-type payload. Which fields are set depends on
// the notification type:
//
//	new_order              orderId, clientName
//	order_completed        orderId, rating, review
//	order_cancelled        orderId, reason
//	order_completed_client orderId
//	order_cancelled_client orderId, reason
//	new_review             orderId, rating, text
type NotificationData struct {
	OrderID    string `json:"orderId,omitempty"`
	ClientName string `json:"clientName,omitempty"`
	Rating     int    `json:"rating,omitempty"`
	Review     string `json:"review,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Text       string `json:"text,omitempty"`
}

// Notification is a one-way, read-tracked record addressed to one user.
// Records are never deleted; acknowledgement flips Read.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Data      NotificationData `json:"data"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
