package entities

import (
	"reflect"
	"testing"
)

func TestQuotationDraft_MergeAuthoritative(t *testing.T) {
	authoritative := Quotation{
		ProductName:    "widget",
		Quantity:       4,
		Destination:    "Casablanca",
		ShippingMethod: "air",
		ServiceFee:     12.5,
		Options: []PriceOption{
			{Title: "standard", UnitPrice: 9.9, DeliveryTime: "15d"},
			{Title: "express", UnitPrice: 19.9},
		},
		Receiver: Receiver{Name: "A. Buyer", Phone: "0600", Address: "1 Main St"},
	}

	t.Run("non-empty draft fields always win", func(t *testing.T) {
		draft := QuotationDraft{
			ProductName: "widget v2",
			Quantity:    "10",
			Receiver:    ReceiverDraft{Phone: "0777"},
		}
		merged := draft.MergeAuthoritative(authoritative)

		if merged.ProductName != "widget v2" {
			t.Fatalf("draft product name overwritten: %s", merged.ProductName)
		}
		if merged.Quantity != "10" {
			t.Fatalf("draft quantity overwritten: %s", merged.Quantity)
		}
		if merged.Receiver.Phone != "0777" {
			t.Fatalf("draft phone overwritten: %s", merged.Receiver.Phone)
		}
	})

	t.Run("empty draft fields fill from snapshot", func(t *testing.T) {
		merged := QuotationDraft{}.MergeAuthoritative(authoritative)

		if merged.ProductName != "widget" || merged.Quantity != "4" {
			t.Fatalf("unexpected fill: %+v", merged)
		}
		if merged.ServiceFee != "12.5" {
			t.Fatalf("expected service fee 12.5, got %s", merged.ServiceFee)
		}
		if merged.Options[0].Title != "standard" || merged.Options[0].UnitPrice != "9.9" {
			t.Fatalf("unexpected option fill: %+v", merged.Options[0])
		}
		if merged.Options[1].Title != "express" {
			t.Fatalf("unexpected option 2 fill: %+v", merged.Options[1])
		}
		if merged.Options[2] != (OptionDraft{}) {
			t.Fatalf("option 3 should stay empty: %+v", merged.Options[2])
		}
		if merged.Receiver.Name != "A. Buyer" || merged.Receiver.Address != "1 Main St" {
			t.Fatalf("unexpected receiver fill: %+v", merged.Receiver)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := QuotationDraft{ProductName: "mine"}.MergeAuthoritative(authoritative)
		twice := once.MergeAuthoritative(authoritative)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("merge not idempotent:\nonce  %+v\ntwice %+v", once, twice)
		}
	})

	t.Run("zero snapshot numbers never fill", func(t *testing.T) {
		merged := QuotationDraft{}.MergeAuthoritative(Quotation{ProductName: "x"})
		if merged.Quantity != "" || merged.ServiceFee != "" {
			t.Fatalf("zero values should not fill: %+v", merged)
		}
	})
}
