package entities

import "testing"

func TestShipmentStatus_CanTransition(t *testing.T) {
	cases := []struct {
		from ShipmentStatus
		to   ShipmentStatus
		want bool
	}{
		{ShipmentStatusWaiting, ShipmentStatusProcessing, true},
		{ShipmentStatusProcessing, ShipmentStatusInTransit, true},
		{ShipmentStatusInTransit, ShipmentStatusDelivered, true},
		{ShipmentStatusWaiting, ShipmentStatusInTransit, false},
		{ShipmentStatusWaiting, ShipmentStatusDelivered, false},
		{ShipmentStatusProcessing, ShipmentStatusWaiting, false},
		{ShipmentStatusDelivered, ShipmentStatusDelayed, false},
		{ShipmentStatusDelivered, ShipmentStatusInTransit, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestShipmentStatus_DelayedReachableFromNonTerminal(t *testing.T) {
	for _, from := range []ShipmentStatus{ShipmentStatusWaiting, ShipmentStatusProcessing, ShipmentStatusInTransit} {
		if !from.CanTransition(ShipmentStatusDelayed) {
			t.Fatalf("%s should allow delayed", from)
		}
	}

	// Delayed resumes anywhere forward but never back to waiting.
	for _, to := range []ShipmentStatus{ShipmentStatusProcessing, ShipmentStatusInTransit, ShipmentStatusDelivered} {
		if !ShipmentStatusDelayed.CanTransition(to) {
			t.Fatalf("delayed should allow %s", to)
		}
	}
	if ShipmentStatusDelayed.CanTransition(ShipmentStatusWaiting) {
		t.Fatalf("delayed should not return to waiting")
	}
}
