package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. Rows are never updated.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReviewerID uuid.UUID `gorm:"type:uuid;not null;index"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_target"`
	TargetType string    `gorm:"type:varchar(32);not null;index:idx_reviews_target"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
