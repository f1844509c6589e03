package response

import (
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
)

type DraftResponse struct {
	Draft entities.QuotationDraft `json:"draft"`
}

func FromDraft(d entities.QuotationDraft) DraftResponse {
	return DraftResponse{Draft: d}
}
