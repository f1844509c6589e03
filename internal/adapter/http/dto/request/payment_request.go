package request

import (
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
)

// PaymentCreateRequest is the payload for submitting a payment record.
//
// quotation_refs accepts either an array of quotation ids or a legacy
// comma-delimited string; RefDescriptor unmarshals both.
type PaymentCreateRequest struct {
	UserID        string                 `json:"user_id" binding:"required"`
	Method        string                 `json:"method" binding:"required"`
	Amount        float64                `json:"amount" binding:"required"`
	QuotationRefs entities.RefDescriptor `json:"quotation_refs"`
	ProofKey      string                 `json:"proof_key"`
}
