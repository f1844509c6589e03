package response

import (
	"testing"
	"time"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase"
)

func TestFromShipment(t *testing.T) {
	now := time.Now().UTC()
	eta := now.Add(72 * time.Hour)
	s := entities.Shipment{
		ID:           "sh-1",
		QuotationRef: "q1",
		UserID:       "u1",
		Status:       entities.ShipmentStatusInTransit,
		Location:     "Tangier Med",
		Label:        "Cleared customs",
		ETA:          &eta,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res := FromShipment(s)
	if res.ID != "sh-1" || res.QuotationRef != "q1" || res.Status != "in_transit" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.ETA == nil || !res.ETA.Equal(eta) {
		t.Fatalf("unexpected eta: %v", res.ETA)
	}
	if res.DeliveredAt != nil {
		t.Fatalf("expected nil delivered_at, got %v", res.DeliveredAt)
	}
}

func TestFromEnrichedShipment(t *testing.T) {
	es := usecase.EnrichedShipment{
		Shipment:          entities.Shipment{ID: "sh-1", Status: entities.ShipmentStatusWaiting},
		Quotation:         &entities.Quotation{ID: "q1", RefCode: "QT-ABC12345"},
		QuotationResolved: true,
		Owner:             &entities.Profile{ID: "u1"},
		OwnerResolved:     true,
	}

	res := FromEnrichedShipment(es)
	if res.Shipment.ID != "sh-1" {
		t.Fatalf("unexpected shipment: %+v", res.Shipment)
	}
	if res.Quotation == nil || res.Quotation.RefCode != "QT-ABC12345" || !res.QuotationResolved {
		t.Fatalf("unexpected quotation: %+v", res.Quotation)
	}
	if res.Owner == nil || !res.OwnerResolved {
		t.Fatalf("unexpected owner: %+v", res.Owner)
	}
}
