package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShopID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"not null"`
	Category    string    `gorm:"type:varchar(100);not null"`
	ImageURL    *string   `gorm:"type:text"`
	Stock       int       `gorm:"not null"`
	IsAvailable bool      `gorm:"not null;index"`
	CreatedAt   time.Time

	Shop *ShopModel `gorm:"foreignKey:ShopID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
