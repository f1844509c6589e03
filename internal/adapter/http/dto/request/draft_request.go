package request

import (
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
)

// DraftSaveRequest wraps a full draft snapshot. Writes are whole-draft and
// write-through; the client sends the complete form state on every change.
type DraftSaveRequest struct {
	Draft entities.QuotationDraft `json:"draft"`
}

// WizardStepRequest carries the draft state for an advance/back/submit action.
type WizardStepRequest struct {
	Draft entities.QuotationDraft `json:"draft"`
}
