package request

import (
	"errors"
	"strings"
	"time"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
)

var ErrUnknownShipmentStatus = errors.New("unknown shipment status")

type ReceiverRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

func (r ReceiverRequest) ResolveReceiver() entities.Receiver {
	return entities.Receiver{Name: r.Name, Phone: r.Phone, Address: r.Address}
}

type ShipmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ShipmentStatusRequest) ResolveStatus() (entities.ShipmentStatus, error) {
	switch entities.ShipmentStatus(strings.ToLower(strings.TrimSpace(r.Status))) {
	case entities.ShipmentStatusWaiting:
		return entities.ShipmentStatusWaiting, nil
	case entities.ShipmentStatusProcessing:
		return entities.ShipmentStatusProcessing, nil
	case entities.ShipmentStatusInTransit:
		return entities.ShipmentStatusInTransit, nil
	case entities.ShipmentStatusDelivered:
		return entities.ShipmentStatusDelivered, nil
	case entities.ShipmentStatusDelayed:
		return entities.ShipmentStatusDelayed, nil
	default:
		return "", ErrUnknownShipmentStatus
	}
}

type ShipmentTrackingRequest struct {
	Location string     `json:"location"`
	Label    string     `json:"label"`
	ETA      *time.Time `json:"eta"`
}
