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

var errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)

// QuotationHandler handles HTTP requests for quotations.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("quotation_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) ListQuotationsByUser(c *gin.Context) {
	quotations, err := h.usecase.ListByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotations(quotations))
}

func (h *QuotationHandler) SelectPriceOption(c *gin.Context) {
	var payload request.SelectOptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.SelectPriceOption(c.Request.Context(), c.Param("quotation_id"), payload.Option)
	if err != nil {
		log.Printf("[quotation][handler] select option failed quotation_id=%s option=%d err=%v", c.Param("quotation_id"), payload.Option, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) SetPriceOptions(c *gin.Context) {
	var payload request.SetOptionsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.SetPriceOptions(c.Request.Context(), c.Param("quotation_id"), payload.ResolveOptions(), payload.ServiceFee)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) SubmitQuotationReceiver(c *gin.Context) {
	var payload request.ReceiverRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.SetReceiver(c.Request.Context(), c.Param("quotation_id"), payload.ResolveReceiver())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	q, err := h.usecase.Reject(c.Request.Context(), c.Param("quotation_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidQuotationInput),
		errors.Is(err, usecase.ErrInvalidOptionIndex), errors.Is(err, usecase.ErrInvalidOptions),
		errors.Is(err, usecase.ErrInvalidQuotationReceiver):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOptionSelectionLocked):
		return pkg.NewDomainErrorSimple("OPTION_SELECTION_LOCKED", "A payment already references this quotation", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationNotPending):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_PENDING", "Quotation is not pending", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
