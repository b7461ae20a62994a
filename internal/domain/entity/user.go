package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of any role. Rating fields are only meaningful for
// delivery agents and are written exclusively by the rating aggregator.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Location     *Location `json:"location"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"total_reviews"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
