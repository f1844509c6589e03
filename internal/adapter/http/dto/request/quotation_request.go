package request

import (
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
)

type SelectOptionRequest struct {
	Option int `json:"option" binding:"required"`
}

type PriceOptionRequest struct {
	Title        string  `json:"title" binding:"required"`
	UnitPrice    float64 `json:"unit_price" binding:"required"`
	UnitWeight   float64 `json:"unit_weight"`
	DeliveryTime string  `json:"delivery_time"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url"`
	ImageURL2    string  `json:"image_url2"`
}

// SetOptionsRequest carries the admin pricing form: option 1 mandatory,
// options 2-3 optional (ordering enforced by the use case).
type SetOptionsRequest struct {
	Options    []PriceOptionRequest `json:"options" binding:"required"`
	ServiceFee float64              `json:"service_fee"`
}

func (r SetOptionsRequest) ResolveOptions() []entities.PriceOption {
	options := make([]entities.PriceOption, 0, len(r.Options))
	for _, opt := range r.Options {
		options = append(options, entities.PriceOption{
			Title:        opt.Title,
			UnitPrice:    opt.UnitPrice,
			UnitWeight:   opt.UnitWeight,
			DeliveryTime: opt.DeliveryTime,
			Description:  opt.Description,
			ImageURL:     opt.ImageURL,
			ImageURL2:    opt.ImageURL2,
		})
	}
	return options
}
