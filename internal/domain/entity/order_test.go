package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []OrderItem
		want  float64
	}{
		{name: "no items", want: 0},
		{
			name:  "float-unfriendly prices",
			items: []OrderItem{{Quantity: 3, Price: 0.1}, {Quantity: 1, Price: 0.2}},
			want:  0.5,
		},
		{
			name:  "sub-cent amounts keep full precision",
			items: []OrderItem{{Quantity: 3, Price: 0.333}, {Quantity: 1, Price: 0.004}},
			want:  1.003,
		},
		{
			name:  "quantity zero contributes nothing",
			items: []OrderItem{{Quantity: 0, Price: 9.99}, {Quantity: 2, Price: 1.25}},
			want:  2.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, OrderTotal(tt.items), 1e-12)
		})
	}
}

func TestOrder_AssignedTo(t *testing.T) {
	agentID := uuid.New()
	order := &Order{}
	assert.False(t, order.AssignedTo(agentID))

	order.DeliveryAgentID = &agentID
	assert.True(t, order.AssignedTo(agentID))
	assert.False(t, order.AssignedTo(uuid.New()))
}
