package handlers

import (
	"errors"
	"net/http"

	request "github.com/amaadour/admin-sourcing-launch-sub000/internal/adapter/http/dto/request"
	response "github.com/amaadour/admin-sourcing-launch-sub000/internal/adapter/http/dto/response"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase"
	"github.com/amaadour/admin-sourcing-launch-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)

// DraftHandler exposes the durable draft for a quotation's pricing/receiver
// form: merge-on-load GET, write-through PUT, and DELETE on cancel.

type DraftHandler struct {
	usecase usecase.IDraftUseCase
}

func NewDraftHandler(uc usecase.IDraftUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc}
}

func (h *DraftHandler) LoadDraft(c *gin.Context) {
	draft, err := h.usecase.Load(c.Request.Context(), c.Param("quotation_id"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *DraftHandler) SaveDraft(c *gin.Context) {
	var payload request.DraftSaveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.Save(c.Request.Context(), c.Param("quotation_id"), payload.Draft)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *DraftHandler) ClearDraft(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context(), c.Param("quotation_id")); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
