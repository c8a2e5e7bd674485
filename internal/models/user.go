package models

import (
	"time"
)

type Role string

const (
	RoleClient Role = "client"
	RolePro    Role = "pro"
)

// Location is a map pin for a pro profile.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// User covers both clients and pros. Pro-only fields (category, price,
// rating, ...) stay zero for clients and are omitted from JSON.
type User struct {
	ID    string `json:"id"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`

	PasswordHash string `json:"passwordHash,omitempty"`

	// pro profile
	Category      string    `json:"category,omitempty"`
	Icon          string    `json:"icon,omitempty"`
	Price         int       `json:"price,omitempty"`
	Rating        float64   `json:"rating,omitempty"`
	RatingCount   int       `json:"ratingCount,omitempty"`
	Desc          string    `json:"desc,omitempty"`
	Location      *Location `json:"location,omitempty"`
	Verified      bool      `json:"verified,omitempty"`
	CompletedJobs int       `json:"completedJobs,omitempty"`

	// client favorites (pro ids)
	Favorites []string `json:"favorites"`

	CreatedAt time.Time `json:"createdAt"`
}

// Public strips credentials before a user record leaves the server.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
