package models

import "time"

// Admin represents the admins table in the database.
type Admin struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
