package entity

import "testing"

func TestCanTransitionOrder(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusRejected, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusCompleted, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusConfirmed, OrderStatusShipped, true},
		{OrderStatusConfirmed, OrderStatusPending, false},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusCompleted, true},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusRejected, OrderStatusConfirmed, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		// same-state writes stay legal so repeated calls are idempotent
		{OrderStatusShipped, OrderStatusShipped, true},
		{OrderStatusCompleted, OrderStatusCompleted, true},
	}

	for _, c := range cases {
		if got := CanTransitionOrder(c.from, c.to); got != c.want {
			t.Errorf("CanTransitionOrder(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestIsOrderStatus(t *testing.T) {
	for _, s := range AllOrderStatuses {
		if !IsOrderStatus(s) {
			t.Errorf("Expected %q to be a known status", s)
		}
	}
	for _, s := range []string{"Pending", "SHIPPED", "done", ""} {
		if IsOrderStatus(s) {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}
