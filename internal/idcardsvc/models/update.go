package models

import "time"

// Update is a published announcement.
type Update struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        *string   `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
}
