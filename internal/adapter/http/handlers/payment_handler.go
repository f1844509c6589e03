package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "github.com/amaadour/admin-sourcing-launch-sub000/internal/adapter/http/dto/request"
	response "github.com/amaadour/admin-sourcing-launch-sub000/internal/adapter/http/dto/response"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase"
	"github.com/amaadour/admin-sourcing-launch-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for payments and the reconciled
// payments overview.

type PaymentHandler struct {
	usecase    usecase.IPaymentUseCase
	enrichment usecase.IEnrichmentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, enrichment usecase.IEnrichmentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc, enrichment: enrichment}
}

// CreatePayment records a payment against one or more quotations. The
// response reports only the payment write; the dependent quotation approvals
// run after it, detached.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreatePaymentInput{
		UserID:        payload.UserID,
		Method:        payload.Method,
		Amount:        payload.Amount,
		QuotationRefs: payload.QuotationRefs,
		ProofKey:      payload.ProofKey,
	})
	if err != nil {
		log.Printf("[payment][handler] create failed user_id=%s err=%v", payload.UserID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func (h *PaymentHandler) ListPaymentsByUser(c *gin.Context) {
	payments, err := h.usecase.ListByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) ApprovePayment(c *gin.Context) {
	h.reviewPayment(c, h.usecase.Approve)
}

func (h *PaymentHandler) RejectPayment(c *gin.Context) {
	h.reviewPayment(c, h.usecase.Reject)
}

func (h *PaymentHandler) reviewPayment(c *gin.Context, review func(ctx context.Context, id string) (entities.Payment, error)) {
	p, err := review(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// PaymentsOverview returns the reconciled per-order view over all payments.
func (h *PaymentHandler) PaymentsOverview(c *gin.Context) {
	enriched, err := h.enrichment.ListPaymentsOverview(c.Request.Context())
	if err != nil {
		log.Printf("[payment][handler] overview failed err=%v", err)
		appErr := pkg.NewDomainError("OVERVIEW_UNAVAILABLE", "Could not load payments overview", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEnrichedPayments(enriched))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidPaymentInput),
		errors.Is(err, usecase.ErrNoQuotationRefs):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentAmountMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_AMOUNT_MISMATCH", "Amount does not match the referenced quotations", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Referenced quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentAlreadyReviewed):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_REVIEWED", "Payment already reviewed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
