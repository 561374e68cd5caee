package models

import "time"

// Card is one employee ID-card record. Photo is an absolute URL into the
// media store, nil when no photo was uploaded.
type Card struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	EmployeeID string    `json:"employeeId"`
	Position   string    `json:"position"`
	Gender     string    `json:"gender"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Company    string    `json:"company"`
	Skills     string    `json:"skills,omitempty"`
	Photo      *string   `json:"photo"`
	CreatedAt  time.Time `json:"created_at"`
}
