package models

import "time"

// Message is a public contact-form submission.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"message"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}
