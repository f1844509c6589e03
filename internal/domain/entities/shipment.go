package entities

import "time"

// ShipmentStatus represents the delivery lifecycle of a shipment.
//
// Waiting -> Processing -> InTransit -> Delivered, with Delayed reachable from
// any non-terminal state. Processing is entered when receiver information is
// first submitted for a shipment still in Waiting.

type ShipmentStatus string

const (
	ShipmentStatusWaiting    ShipmentStatus = "waiting"
	ShipmentStatusProcessing ShipmentStatus = "processing"
	ShipmentStatusInTransit  ShipmentStatus = "in_transit"
	ShipmentStatusDelivered  ShipmentStatus = "delivered"
	ShipmentStatusDelayed    ShipmentStatus = "delayed"
)

var shipmentValidNext = map[ShipmentStatus]map[ShipmentStatus]bool{
	ShipmentStatusWaiting:    {ShipmentStatusProcessing: true, ShipmentStatusDelayed: true},
	ShipmentStatusProcessing: {ShipmentStatusInTransit: true, ShipmentStatusDelayed: true},
	ShipmentStatusInTransit:  {ShipmentStatusDelivered: true, ShipmentStatusDelayed: true},
	ShipmentStatusDelayed:    {ShipmentStatusProcessing: true, ShipmentStatusInTransit: true, ShipmentStatusDelivered: true},
	ShipmentStatusDelivered:  {},
}

func (s ShipmentStatus) CanTransition(to ShipmentStatus) bool {
	return shipmentValidNext[s][to]
}

// Shipment tracks delivery of an approved quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Rows are created by the fulfilment pipeline outside this service; this
// service only reads them and patches status, receiver, tracking and label
// fields. QuotationRef links back to the quotation by id or, on legacy rows,
// by reference code; by convention one shipment per quotation, not enforced.
type Shipment struct {
	ID           string         `json:"id"`
	QuotationRef string         `json:"quotation_ref"`
	UserID       string         `json:"user_id"`
	Status       ShipmentStatus `json:"status"`
	Location     string         `json:"location,omitempty"`
	MediaURLs    []string       `json:"media_urls,omitempty"`
	Label        string         `json:"label,omitempty"`
	Receiver     Receiver       `json:"receiver"`
	ETA          *time.Time     `json:"eta,omitempty"`
	DeliveredAt  *time.Time     `json:"delivered_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
