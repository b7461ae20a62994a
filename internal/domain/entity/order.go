package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is an open set: delivery agents may report any non-empty status.
type OrderStatus string

// Well-known statuses. Only pending and assigned are set by the workflow itself.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAssigned  OrderStatus = "assigned"
	OrderStatusPickedUp  OrderStatus = "picked_up"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem snapshots name and price at the time the order was placed.
type OrderItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
}

// Order is placed by a customer against one shop. TotalAmount is fixed at
// creation and never recomputed from live product prices.
type Order struct {
	ID               uuid.UUID   `json:"id"`
	CustomerID       uuid.UUID   `json:"customer_id"`
	ShopID           uuid.UUID   `json:"shop_id"`
	Items            []OrderItem `json:"items"`
	TotalAmount      float64     `json:"total_amount"`
	DeliveryAddress  string      `json:"delivery_address"`
	DeliveryLocation Location    `json:"delivery_location"`
	Status           OrderStatus `json:"status"`
	DeliveryAgentID  *uuid.UUID  `json:"delivery_agent_id"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// OrderTotal sums price × quantity over the snapshot in decimal arithmetic, unrounded.
func OrderTotal(items []OrderItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}

	return total.InexactFloat64()
}

// AssignedTo reports whether the order is assigned to the given agent.
func (o *Order) AssignedTo(agentID uuid.UUID) bool {
	return o.DeliveryAgentID != nil && *o.DeliveryAgentID == agentID
}

// OrderFilter scopes order listings. Empty fields do not filter.
type OrderFilter struct {
	CustomerID      *uuid.UUID
	ShopIDs         []uuid.UUID
	DeliveryAgentID *uuid.UUID
}
