package request

import (
	"errors"
	"testing"
)

func TestShipmentStatusRequest_ResolveStatus(t *testing.T) {
	for _, raw := range []string{"waiting", "processing", "in_transit", "delivered", "delayed"} {
		r := ShipmentStatusRequest{Status: raw}
		status, err := r.ResolveStatus()
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if string(status) != raw {
			t.Fatalf("expected %q, got %q", raw, status)
		}
	}

	r := ShipmentStatusRequest{Status: "  Delivered "}
	status, err := r.ResolveStatus()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(status) != "delivered" {
		t.Fatalf("expected normalized status, got %q", status)
	}

	r2 := ShipmentStatusRequest{Status: "teleported"}
	if _, err := r2.ResolveStatus(); !errors.Is(err, ErrUnknownShipmentStatus) {
		t.Fatalf("expected ErrUnknownShipmentStatus, got %v", err)
	}
}

func TestReceiverRequest_ResolveReceiver(t *testing.T) {
	r := ReceiverRequest{Name: "A. Receiver", Phone: "+212600000000", Address: "12 Harbor Rd"}
	receiver := r.ResolveReceiver()
	if receiver.Name != r.Name || receiver.Phone != r.Phone || receiver.Address != r.Address {
		t.Fatalf("unexpected receiver: %+v", receiver)
	}
}
