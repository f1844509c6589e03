package response

import (
	"time"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
)

type QuotationResponse struct {
	ID             string                 `json:"id"`
	RefCode        string                 `json:"ref_code"`
	UserID         string                 `json:"user_id"`
	ProductName    string                 `json:"product_name"`
	ProductLink    string                 `json:"product_link,omitempty"`
	Quantity       int                    `json:"quantity"`
	Destination    string                 `json:"destination"`
	ShippingMethod string                 `json:"shipping_method"`
	Options        []entities.PriceOption `json:"options,omitempty"`
	SelectedOption int                    `json:"selected_option"`
	ServiceFee     float64                `json:"service_fee"`
	Status         string                 `json:"status"`
	Receiver       entities.Receiver      `json:"receiver"`
	Total          float64                `json:"total"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:             q.ID,
		RefCode:        q.RefCode,
		UserID:         q.UserID,
		ProductName:    q.ProductName,
		ProductLink:    q.ProductLink,
		Quantity:       q.Quantity,
		Destination:    q.Destination,
		ShippingMethod: q.ShippingMethod,
		Options:        q.Options,
		SelectedOption: q.SelectedOption,
		ServiceFee:     q.ServiceFee,
		Status:         string(q.Status),
		Receiver:       q.Receiver,
		Total:          q.SelectedTotal(),
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

func FromQuotations(quotations []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		out = append(out, FromQuotation(q))
	}
	return out
}
