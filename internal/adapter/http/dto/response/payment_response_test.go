package response

import (
	"testing"
	"time"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Payment{
		ID:            "pay-1",
		UserID:        "u1",
		Amount:        150,
		Method:        "bank_transfer",
		Status:        entities.PaymentStatusApproved,
		RefCode:       "PAY-ABC12345",
		QuotationRefs: entities.RefsFromString("q1, q2, q1"),
		ProofKey:      "uploads/proof.png",
		CreatedAt:     now,
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.UserID != "u1" || res.Amount != 150 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Status != "approved" || res.RefCode != "PAY-ABC12345" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if len(res.QuotationIDs) != 2 || res.QuotationIDs[0] != "q1" || res.QuotationIDs[1] != "q2" {
		t.Fatalf("expected resolved deduplicated ids, got %v", res.QuotationIDs)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", res.CreatedAt)
	}
}

func TestFromEnrichedPayment(t *testing.T) {
	ep := usecase.EnrichedPayment{
		Payment:            entities.Payment{ID: "pay-1"},
		Quotations:         []entities.Quotation{{ID: "q1"}},
		QuotationsResolved: true,
		Buyer:              &entities.Profile{ID: "u1", Name: "User One"},
		BuyerResolved:      true,
	}

	res := FromEnrichedPayment(ep)
	if res.Payment.ID != "pay-1" {
		t.Fatalf("unexpected payment: %+v", res.Payment)
	}
	if len(res.Quotations) != 1 || res.Quotations[0].ID != "q1" || !res.QuotationsResolved {
		t.Fatalf("unexpected quotations: %+v", res)
	}
	if res.Buyer == nil || res.Buyer.Name != "User One" || !res.BuyerResolved {
		t.Fatalf("unexpected buyer: %+v", res.Buyer)
	}

	bare := FromEnrichedPayment(usecase.EnrichedPayment{Payment: entities.Payment{ID: "pay-2"}})
	if bare.Buyer != nil || bare.BuyerResolved || bare.QuotationsResolved {
		t.Fatalf("unexpected enrichment on bare payment: %+v", bare)
	}
}
