package response

import (
	"time"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase"
)

type ShipmentResponse struct {
	ID           string            `json:"id"`
	QuotationRef string            `json:"quotation_ref"`
	UserID       string            `json:"user_id"`
	Status       string            `json:"status"`
	Location     string            `json:"location,omitempty"`
	MediaURLs    []string          `json:"media_urls,omitempty"`
	Label        string            `json:"label,omitempty"`
	Receiver     entities.Receiver `json:"receiver"`
	ETA          *time.Time        `json:"eta,omitempty"`
	DeliveredAt  *time.Time        `json:"delivered_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func FromShipment(s entities.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:           s.ID,
		QuotationRef: s.QuotationRef,
		UserID:       s.UserID,
		Status:       string(s.Status),
		Location:     s.Location,
		MediaURLs:    s.MediaURLs,
		Label:        s.Label,
		Receiver:     s.Receiver,
		ETA:          s.ETA,
		DeliveredAt:  s.DeliveredAt,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func FromShipments(shipments []entities.Shipment) []ShipmentResponse {
	out := make([]ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, FromShipment(s))
	}
	return out
}

type EnrichedShipmentResponse struct {
	Shipment          ShipmentResponse   `json:"shipment"`
	Quotation         *QuotationResponse `json:"quotation,omitempty"`
	QuotationResolved bool               `json:"quotation_resolved"`
	Owner             *ProfileResponse   `json:"owner,omitempty"`
	OwnerResolved     bool               `json:"owner_resolved"`
}

func FromEnrichedShipment(es usecase.EnrichedShipment) EnrichedShipmentResponse {
	out := EnrichedShipmentResponse{
		Shipment:          FromShipment(es.Shipment),
		QuotationResolved: es.QuotationResolved,
		OwnerResolved:     es.OwnerResolved,
	}
	if es.Quotation != nil {
		q := FromQuotation(*es.Quotation)
		out.Quotation = &q
	}
	if es.Owner != nil {
		owner := FromProfile(*es.Owner)
		out.Owner = &owner
	}
	return out
}

func FromEnrichedShipments(ess []usecase.EnrichedShipment) []EnrichedShipmentResponse {
	out := make([]EnrichedShipmentResponse, 0, len(ess))
	for _, es := range ess {
		out = append(out, FromEnrichedShipment(es))
	}
	return out
}
