package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/amaadour/admin-sourcing-launch-sub000/internal/adapter/http/dto/request"
	response "github.com/amaadour/admin-sourcing-launch-sub000/internal/adapter/http/dto/response"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase"
	"github.com/amaadour/admin-sourcing-launch-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidShipmentPayload = pkg.NewDomainErrorSimple("INVALID_SHIPMENT_INPUT", "Invalid shipment payload", http.StatusBadRequest)

// ShipmentHandler handles HTTP requests for shipments and the reconciled
// shipments overview.

type ShipmentHandler struct {
	usecase    usecase.IShipmentUseCase
	enrichment usecase.IEnrichmentUseCase
}

func NewShipmentHandler(uc usecase.IShipmentUseCase, enrichment usecase.IEnrichmentUseCase) *ShipmentHandler {
	return &ShipmentHandler{usecase: uc, enrichment: enrichment}
}

func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("shipment_id"))
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShipment(s))
}

func (h *ShipmentHandler) ListShipmentsByUser(c *gin.Context) {
	shipments, err := h.usecase.ListByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShipments(shipments))
}

func (h *ShipmentHandler) SetShipmentStatus(c *gin.Context) {
	var payload request.ShipmentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SetStatus(c.Request.Context(), c.Param("shipment_id"), status)
	if err != nil {
		log.Printf("[shipment][handler] set status failed shipment_id=%s status=%s err=%v", c.Param("shipment_id"), status, err)
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShipment(s))
}

func (h *ShipmentHandler) SubmitReceiverInfo(c *gin.Context) {
	var payload request.ReceiverRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SubmitReceiverInfo(c.Request.Context(), c.Param("shipment_id"), payload.ResolveReceiver())
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShipment(s))
}

func (h *ShipmentHandler) UpdateTracking(c *gin.Context) {
	var payload request.ShipmentTrackingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.UpdateTracking(c.Request.Context(), c.Param("shipment_id"), payload.Location, payload.Label, payload.ETA)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShipment(s))
}

// ShipmentsOverview returns the reconciled per-order view over all shipments.
func (h *ShipmentHandler) ShipmentsOverview(c *gin.Context) {
	enriched, err := h.enrichment.ListShipmentsOverview(c.Request.Context())
	if err != nil {
		log.Printf("[shipment][handler] overview failed err=%v", err)
		appErr := pkg.NewDomainError("OVERVIEW_UNAVAILABLE", "Could not load shipments overview", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEnrichedShipments(enriched))
}

func mapShipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidShipmentID), errors.Is(err, usecase.ErrInvalidShipmentReceiver),
		errors.Is(err, usecase.ErrInvalidShipmentTrackingSet):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipmentNotFound):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_FOUND", "Shipment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidShipmentTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
