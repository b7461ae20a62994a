package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item of a shop.
type Product struct {
	ID          uuid.UUID `json:"id"`
	ShopID      uuid.UUID `json:"shop_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    *string   `json:"image_url"`
	Stock       int       `json:"stock"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductDetails are the owner-editable fields of a product.
type ProductDetails struct {
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    *string
	Stock       int
}

// Apply replaces the editable fields.
func (p *Product) Apply(details ProductDetails) {
	p.Name = details.Name
	p.Description = details.Description
	p.Price = details.Price
	p.Category = details.Category
	p.ImageURL = details.ImageURL
	p.Stock = details.Stock
}
