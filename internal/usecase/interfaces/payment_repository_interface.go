package interfaces

import (
	"context"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// ListReferencingQuotation matches both link encodings: the quotation id
// inside the refs field, and the quotation's reference code against the
// payment's own ref code column (legacy rows share one transaction reference),
// so callers can tell whether any payment exists for a quotation.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error)
	ListReferencingQuotation(ctx context.Context, quotationID, quotationRefCode string) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error)
}
