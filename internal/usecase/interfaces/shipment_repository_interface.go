package interfaces

import (
	"context"
	"time"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
)

// IShipmentRepository abstracts DynamoDB persistence for Shipment.
//
// There is deliberately no Create: shipment rows are written by the fulfilment
// pipeline and this service only patches existing ones.

type IShipmentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Shipment, error)
	List(ctx context.Context) ([]entities.Shipment, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Shipment, error)
	UpdateStatus(ctx context.Context, id string, status entities.ShipmentStatus, deliveredAt *time.Time) (entities.Shipment, error)
	UpdateReceiver(ctx context.Context, id string, receiver entities.Receiver, status *entities.ShipmentStatus) (entities.Shipment, error)
	UpdateTracking(ctx context.Context, id string, location, label string, eta *time.Time) (entities.Shipment, error)
}
