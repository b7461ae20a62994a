package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel mirrors the 'shops' table.
type ShopModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Description  string    `gorm:"type:text"`
	Latitude     float64   `gorm:"not null"`
	Longitude    float64   `gorm:"not null"`
	Address      string    `gorm:"type:text;not null"`
	Phone        string    `gorm:"type:varchar(50)"`
	Rating       float64   `gorm:"not null;default:0"`
	TotalReviews int       `gorm:"not null;default:0"`
	IsActive     bool      `gorm:"not null;index"`
	CreatedAt    time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
