package service

import (
	"context"
	"time"
)

// OrderEventType names a workflow change.
type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventAssigned      OrderEventType = "order.assigned"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent is emitted after every order workflow change.
type OrderEvent struct {
	RequestID       string         `json:"request_id,omitempty"` // For distributed tracing
	Type            OrderEventType `json:"type"`
	OrderID         string         `json:"order_id"`
	ShopID          string         `json:"shop_id"`
	CustomerID      string         `json:"customer_id"`
	DeliveryAgentID string         `json:"delivery_agent_id,omitempty"`
	Status          string         `json:"status"`
	TotalAmount     float64        `json:"total_amount"`
	OccurredAt      time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order workflow event.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
