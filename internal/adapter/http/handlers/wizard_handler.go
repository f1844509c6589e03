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

var errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)

// WizardHandler drives the quotation-creation wizard. Step validation errors
// come back as 422 with the blocking field so the form can highlight it.

type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

func (h *WizardHandler) LoadWizard(c *gin.Context) {
	draft, err := h.usecase.Load(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *WizardHandler) AdvanceWizard(c *gin.Context) {
	var payload request.WizardStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.Advance(c.Request.Context(), c.Param("user_id"), payload.Draft)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *WizardHandler) BackWizard(c *gin.Context) {
	var payload request.WizardStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.Back(c.Request.Context(), c.Param("user_id"), payload.Draft)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *WizardHandler) SubmitWizard(c *gin.Context) {
	var payload request.WizardStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), c.Param("user_id"), payload.Draft)
	if err != nil {
		log.Printf("[wizard][handler] submit failed user_id=%s err=%v", c.Param("user_id"), err)
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuotation(created))
}

func (h *WizardHandler) CancelWizard(c *gin.Context) {
	if err := h.usecase.Cancel(c.Request.Context(), c.Param("user_id")); err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapWizardError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", vErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidDraftKey), errors.Is(err, usecase.ErrInvalidQuotationInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", "A submission is already in progress", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
