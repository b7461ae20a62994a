package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Location is optional; both columns are set or neither.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone        string    `gorm:"type:varchar(50);not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(32);not null;index"`
	Latitude     *float64
	Longitude    *float64
	Rating       float64 `gorm:"not null;default:0"`
	TotalReviews int     `gorm:"not null;default:0"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
