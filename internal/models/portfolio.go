package models

import "time"

// PortfolioItem is a pro's work sample: a title plus uploaded photo filenames.
type PortfolioItem struct {
	ID          string    `json:"id"`
	ProID       string    `json:"proId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Photos      []string  `json:"photos"`
	CreatedAt   time.Time `json:"createdAt"`
}
