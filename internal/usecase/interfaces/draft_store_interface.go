package interfaces

import (
	"context"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
)

// IDraftStore abstracts the durable key-value store holding in-progress form
// state, keyed by record identity. Backed by Redis in production; the merge
// semantics in the draft use case stay testable against any implementation.

type IDraftStore interface {
	Get(ctx context.Context, key string) (entities.QuotationDraft, bool, error)
	Set(ctx context.Context, key string, draft entities.QuotationDraft) error
	Delete(ctx context.Context, key string) error
}
