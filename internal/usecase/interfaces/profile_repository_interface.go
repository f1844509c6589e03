package interfaces

import (
	"context"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
)

// IProfileRepository abstracts DynamoDB persistence for Profile. Profiles are
// a read-only join target; GetByIDs is a single batch request.

type IProfileRepository interface {
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.Profile, error)
}
