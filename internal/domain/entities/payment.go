package entities

import "time"

// PaymentStatus represents the review outcome of a submitted payment.
//
// Payments are records of externally settled transfers; an admin approves or
// rejects them after checking the proof asset. Review is independent of the
// referenced quotations' state once the payment exists.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

var paymentValidNext = map[PaymentStatus]map[PaymentStatus]bool{
	PaymentStatusPending:  {PaymentStatusApproved: true, PaymentStatusRejected: true},
	PaymentStatusApproved: {},
	PaymentStatusRejected: {},
}

func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	return paymentValidNext[s][to]
}

// Payment is a payment record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// QuotationRefs carries the cross-collection link in whatever shape the row
// was written with (list or legacy comma-delimited string); RefCode (PAY-xxxx)
// doubles as the secondary reconciliation key for rows that linked quotations
// by reference code instead of id.
type Payment struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	Amount        float64       `json:"amount"`
	Method        string        `json:"method"`
	Status        PaymentStatus `json:"status"`
	RefCode       string        `json:"ref_code"`
	QuotationRefs RefDescriptor `json:"quotation_refs"`
	ProofKey      string        `json:"proof_key,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ReferencesQuotation reports whether the payment links to the quotation by id
// or by shared reference code. Comparison is exact per resolved token: a
// substring database filter over the legacy string form can overmatch (id "q1"
// inside "q10,q2"), so callers re-check with this after unmarshalling.
func (p Payment) ReferencesQuotation(quotationID, quotationRefCode string) bool {
	for _, id := range p.QuotationRefs.Resolve() {
		if id == quotationID {
			return true
		}
	}
	return quotationRefCode != "" && p.RefCode == quotationRefCode
}
