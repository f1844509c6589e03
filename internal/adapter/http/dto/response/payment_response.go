package response

import (
	"time"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase"
)

type PaymentResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Amount       float64   `json:"amount"`
	Method       string    `json:"method"`
	Status       string    `json:"status"`
	RefCode      string    `json:"ref_code"`
	QuotationIDs []string  `json:"quotation_ids"`
	ProofKey     string    `json:"proof_key,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Amount:       p.Amount,
		Method:       p.Method,
		Status:       string(p.Status),
		RefCode:      p.RefCode,
		QuotationIDs: p.QuotationRefs.Resolve(),
		ProofKey:     p.ProofKey,
		CreatedAt:    p.CreatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

// EnrichedPaymentResponse is the reconciled per-order view. The *Resolved
// flags let clients render "lookup unavailable" distinctly from "no matches".
type EnrichedPaymentResponse struct {
	Payment            PaymentResponse     `json:"payment"`
	Quotations         []QuotationResponse `json:"quotations"`
	QuotationsResolved bool                `json:"quotations_resolved"`
	Buyer              *ProfileResponse    `json:"buyer,omitempty"`
	BuyerResolved      bool                `json:"buyer_resolved"`
}

func FromEnrichedPayment(ep usecase.EnrichedPayment) EnrichedPaymentResponse {
	out := EnrichedPaymentResponse{
		Payment:            FromPayment(ep.Payment),
		Quotations:         FromQuotations(ep.Quotations),
		QuotationsResolved: ep.QuotationsResolved,
		BuyerResolved:      ep.BuyerResolved,
	}
	if ep.Buyer != nil {
		buyer := FromProfile(*ep.Buyer)
		out.Buyer = &buyer
	}
	return out
}

func FromEnrichedPayments(eps []usecase.EnrichedPayment) []EnrichedPaymentResponse {
	out := make([]EnrichedPaymentResponse, 0, len(eps))
	for _, ep := range eps {
		out = append(out, FromEnrichedPayment(ep))
	}
	return out
}
