package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/promarket/promarket-server/internal/models"
)

// Document is the whole persisted state: every entity collection under one
// root, serialised wholesale on each mutation.
type Document struct {
	SchemaVersion int                    `json:"schemaVersion"`
	Users         []models.User          `json:"users"`
	Orders        []models.Order         `json:"orders"`
	Notifications []models.Notification  `json:"notifications"`
	Reviews       []models.Review        `json:"reviews"`
	Portfolio     []models.PortfolioItem `json:"portfolio"`
}

func (d *Document) clone() (*Document, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("store: clone: %w", err)
	}
	out := &Document{}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("store: clone: %w", err)
	}
	return out, nil
}

// FindUser returns a pointer into the document, valid only while the caller
// holds the store lock (inside View or Update).
func (d *Document) FindUser(id string) *models.User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) FindUserByEmail(email string) *models.User {
	for i := range d.Users {
		if d.Users[i].Email == email {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) FindOrder(id string) *models.Order {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return &d.Orders[i]
		}
	}
	return nil
}

func (d *Document) FindReview(id string) *models.Review {
	for i := range d.Reviews {
		if d.Reviews[i].ID == id {
			return &d.Reviews[i]
		}
	}
	return nil
}

func (d *Document) ReviewForOrder(orderID string) *models.Review {
	for i := range d.Reviews {
		if d.Reviews[i].OrderID == orderID {
			return &d.Reviews[i]
		}
	}
	return nil
}

func (d *Document) FindNotification(id string) *models.Notification {
	for i := range d.Notifications {
		if d.Notifications[i].ID == id {
			return &d.Notifications[i]
		}
	}
	return nil
}

// UnreadFor returns the user's unread notifications in insertion order.
func (d *Document) UnreadFor(userID string) []models.Notification {
	out := []models.Notification{}
	for _, n := range d.Notifications {
		if n.UserID == userID && !n.Read {
			out = append(out, n)
		}
	}
	return out
}

// OrdersByClient returns the client's orders in insertion order.
func (d *Document) OrdersByClient(clientID string) []models.Order {
	out := []models.Order{}
	for _, o := range d.Orders {
		if o.ClientID == clientID {
			out = append(out, o)
		}
	}
	return out
}

func (d *Document) ReviewsForPro(proID string) []models.Review {
	out := []models.Review{}
	for _, r := range d.Reviews {
		if r.ToUserID == proID {
			out = append(out, r)
		}
	}
	return out
}

func (d *Document) PortfolioForPro(proID string) []models.PortfolioItem {
	out := []models.PortfolioItem{}
	for _, p := range d.Portfolio {
		if p.ProID == proID {
			out = append(out, p)
		}
	}
	return out
}

// ProFilter narrows the public pro listing. Zero values disable a filter.
type ProFilter struct {
	Category  string
	MaxPrice  int
	MinRating float64
	Search    string
	Verified  bool
}

func (d *Document) Pros(f ProFilter) []models.User {
	out := []models.User{}
	for _, u := range d.Users {
		if u.Role != models.RolePro {
			continue
		}
		if f.Category != "" && u.Category != f.Category {
			continue
		}
		if f.MaxPrice > 0 && u.Price > f.MaxPrice {
			continue
		}
		if f.MinRating > 0 && u.Rating < f.MinRating {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(f.Search)) {
			continue
		}
		if f.Verified && !u.Verified {
			continue
		}
		out = append(out, u.Public())
	}
	return out
}
