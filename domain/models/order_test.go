package models

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"new to confirmed", OrderStatusNew, OrderStatusConfirmed, true},
		{"new to cancelled", OrderStatusNew, OrderStatusCancelled, true},
		{"new to shipped skips confirmation", OrderStatusNew, OrderStatusShipped, false},
		{"confirmed to shipped", OrderStatusConfirmed, OrderStatusShipped, true},
		{"confirmed to cancelled", OrderStatusConfirmed, OrderStatusCancelled, true},
		{"shipped to delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"shipped cannot be cancelled", OrderStatusShipped, OrderStatusCancelled, false},
		{"delivered is terminal", OrderStatusDelivered, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusConfirmed, false},
		{"no backwards moves", OrderStatusConfirmed, OrderStatusNew, false},
		{"no self transition", OrderStatusNew, OrderStatusNew, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.allowed {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}
