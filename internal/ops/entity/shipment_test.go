package entity

import "testing"

func TestCanTransitionShipment(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{ShipmentStatusScheduled, ShipmentStatusInTransit, true},
		{ShipmentStatusScheduled, ShipmentStatusCancelled, true},
		{ShipmentStatusScheduled, ShipmentStatusDelivered, false},
		{ShipmentStatusInTransit, ShipmentStatusDelivered, true},
		{ShipmentStatusInTransit, ShipmentStatusCancelled, true},
		{ShipmentStatusInTransit, ShipmentStatusScheduled, false},
		{ShipmentStatusDelivered, ShipmentStatusCancelled, false},
		{ShipmentStatusCancelled, ShipmentStatusScheduled, false},
		{ShipmentStatusDelivered, ShipmentStatusDelivered, true},
	}

	for _, c := range cases {
		if got := CanTransitionShipment(c.from, c.to); got != c.want {
			t.Errorf("CanTransitionShipment(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestIsShipmentStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "in_transit", "delivered", "cancelled"} {
		if !IsShipmentStatus(s) {
			t.Errorf("Expected %q to be a known status", s)
		}
	}
	if IsShipmentStatus("Scheduled") || IsShipmentStatus("") {
		t.Error("Expected non-canonical statuses rejected")
	}
}
