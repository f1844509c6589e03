package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase/interfaces"
)

var (
	ErrShipmentNotFound           = errors.New("shipment not found")
	ErrInvalidShipmentID          = errors.New("invalid shipment id")
	ErrInvalidShipmentTransition  = errors.New("invalid shipment status transition")
	ErrInvalidShipmentReceiver    = errors.New("invalid shipment receiver")
	ErrInvalidShipmentTrackingSet = errors.New("invalid shipment tracking update")
)

// IShipmentUseCase exposes read/patch operations over shipments. Creation is
// out of this service's write path entirely.

type IShipmentUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Shipment, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Shipment, error)
	SetStatus(ctx context.Context, id string, status entities.ShipmentStatus) (entities.Shipment, error)
	SubmitReceiverInfo(ctx context.Context, id string, receiver entities.Receiver) (entities.Shipment, error)
	UpdateTracking(ctx context.Context, id string, location, label string, eta *time.Time) (entities.Shipment, error)
}

type ShipmentUseCase struct {
	repo interfaces.IShipmentRepository
}

var _ IShipmentUseCase = (*ShipmentUseCase)(nil)

func NewShipmentUseCase(repo interfaces.IShipmentRepository) *ShipmentUseCase {
	return &ShipmentUseCase{repo: repo}
}

func (u *ShipmentUseCase) GetByID(ctx context.Context, id string) (entities.Shipment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Shipment{}, ErrInvalidShipmentID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Shipment{}, err
	}
	if s.ID == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}
	return s, nil
}

func (u *ShipmentUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Shipment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidShipmentID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *ShipmentUseCase) SetStatus(ctx context.Context, id string, status entities.ShipmentStatus) (entities.Shipment, error) {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Shipment{}, err
	}
	if !s.Status.CanTransition(status) {
		log.Printf("[shipment][usecase] refused transition shipment_id=%s from=%s to=%s", s.ID, s.Status, status)
		return entities.Shipment{}, ErrInvalidShipmentTransition
	}

	var deliveredAt *time.Time
	if status == entities.ShipmentStatusDelivered {
		now := time.Now().UTC()
		deliveredAt = &now
	}
	return u.repo.UpdateStatus(ctx, s.ID, status, deliveredAt)
}

// SubmitReceiverInfo persists the receiver sub-record. The first submission
// for a shipment still in Waiting also moves it to Processing; resubmissions
// update the fields without touching the status again.
func (u *ShipmentUseCase) SubmitReceiverInfo(ctx context.Context, id string, receiver entities.Receiver) (entities.Shipment, error) {
	receiver.Name = strings.TrimSpace(receiver.Name)
	receiver.Phone = strings.TrimSpace(receiver.Phone)
	receiver.Address = strings.TrimSpace(receiver.Address)
	if receiver.Name == "" || receiver.Phone == "" || receiver.Address == "" {
		return entities.Shipment{}, ErrInvalidShipmentReceiver
	}

	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Shipment{}, err
	}

	var status *entities.ShipmentStatus
	if s.Status == entities.ShipmentStatusWaiting {
		processing := entities.ShipmentStatusProcessing
		status = &processing
		log.Printf("[shipment][usecase] receiver submitted; moving to processing shipment_id=%s", s.ID)
	}
	return u.repo.UpdateReceiver(ctx, s.ID, receiver, status)
}

func (u *ShipmentUseCase) UpdateTracking(ctx context.Context, id string, location, label string, eta *time.Time) (entities.Shipment, error) {
	location = strings.TrimSpace(location)
	label = strings.TrimSpace(label)
	if location == "" && label == "" && eta == nil {
		return entities.Shipment{}, ErrInvalidShipmentTrackingSet
	}

	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Shipment{}, err
	}
	return u.repo.UpdateTracking(ctx, s.ID, location, label, eta)
}
