package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewTargetType selects which record a review rates.
type ReviewTargetType string

const (
	ReviewTargetShop          ReviewTargetType = "shop"
	ReviewTargetDeliveryAgent ReviewTargetType = "delivery_agent"
)

// IsValid checks if the ReviewTargetType is a valid value.
func (t ReviewTargetType) IsValid() bool {
	return t == ReviewTargetShop || t == ReviewTargetDeliveryAgent
}

// Review is immutable once written.
type Review struct {
	ID         uuid.UUID        `json:"id"`
	ReviewerID uuid.UUID        `json:"reviewer_id"`
	TargetID   uuid.UUID        `json:"target_id"`
	TargetType ReviewTargetType `json:"target_type"`
	Rating     int              `json:"rating"`
	Comment    string           `json:"comment"`
	CreatedAt  time.Time        `json:"created_at"`
}

// ReviewTarget identifies a rated shop or delivery agent.
type ReviewTarget struct {
	ID   uuid.UUID
	Type ReviewTargetType
}

// RatingSummary is the aggregate written back onto a target.
type RatingSummary struct {
	Average float64
	Count   int
}

// Summarize averages all ratings of a target.
func Summarize(reviews []*Review) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{}
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	return RatingSummary{
		Average: float64(sum) / float64(len(reviews)),
		Count:   len(reviews),
	}
}
