package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Items are stored in 'order_items'.
type OrderModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShopID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	TotalAmount     float64    `gorm:"not null"`
	DeliveryAddress string     `gorm:"type:text;not null"`
	DeliveryLat     float64    `gorm:"not null"`
	DeliveryLng     float64    `gorm:"not null"`
	Status          string     `gorm:"type:varchar(64);not null"`
	DeliveryAgentID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time  `gorm:"index"`
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Position keeps the submitted item order.
type OrderItemModel struct {
	ID          uint      `gorm:"primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"not null"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(200);not null"`
	Quantity    int       `gorm:"not null"`
	Price       float64   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
