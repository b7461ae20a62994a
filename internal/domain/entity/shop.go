package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop belongs to exactly one shop owner.
type Shop struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Location     Location  `json:"location"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"total_reviews"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// OwnedBy reports whether userID owns the shop.
func (s *Shop) OwnedBy(userID uuid.UUID) bool {
	return s.OwnerID == userID
}
