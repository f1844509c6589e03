package interfaces

import (
	"context"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// GetByIDs and GetByRefCodes are batch lookups: each call is a single request
// against the collection regardless of how many identifiers it carries. The
// joiner depends on that to stay at one fetch per target collection.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.Quotation, error)
	GetByRefCodes(ctx context.Context, codes []string) ([]entities.Quotation, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quotation, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error)
	UpdateSelectedOption(ctx context.Context, id string, selected int) (entities.Quotation, error)
	UpdateOptions(ctx context.Context, id string, options []entities.PriceOption, serviceFee float64) (entities.Quotation, error)
	UpdateReceiver(ctx context.Context, id string, receiver entities.Receiver) (entities.Quotation, error)
}
