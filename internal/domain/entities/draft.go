package entities

import "strconv"

// OptionDraft is the in-progress form state for one pricing option. All fields
// are strings because they mirror raw form inputs, validated only on submit.
type OptionDraft struct {
	Title        string `json:"title,omitempty"`
	UnitPrice    string `json:"unit_price,omitempty"`
	UnitWeight   string `json:"unit_weight,omitempty"`
	DeliveryTime string `json:"delivery_time,omitempty"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	ImageURL2    string `json:"image_url2,omitempty"`
}

// ReceiverDraft is the in-progress receiver section.
type ReceiverDraft struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// QuotationDraft is the durable, not-yet-submitted form state for a quotation,
// recoverable across page reloads. Step tracks the wizard position for
// creation drafts.
type QuotationDraft struct {
	Step           int            `json:"step,omitempty"`
	ProductName    string         `json:"product_name,omitempty"`
	ProductLink    string         `json:"product_link,omitempty"`
	Quantity       string         `json:"quantity,omitempty"`
	Destination    string         `json:"destination,omitempty"`
	ShippingMethod string         `json:"shipping_method,omitempty"`
	Options        [3]OptionDraft `json:"options"`
	ServiceFee     string         `json:"service_fee,omitempty"`
	Receiver       ReceiverDraft  `json:"receiver"`
}

// MergeAuthoritative reconciles the draft against a freshly fetched snapshot.
//
// Precedence is field-level: a non-empty draft field always wins (in-progress
// edits are never discarded by a newer fetch), while an empty draft field is
// filled from the snapshot so it does not mask data populated upstream. The
// operation is idempotent.
func (d QuotationDraft) MergeAuthoritative(q Quotation) QuotationDraft {
	d.ProductName = takeDraft(d.ProductName, q.ProductName)
	d.ProductLink = takeDraft(d.ProductLink, q.ProductLink)
	if d.Quantity == "" && q.Quantity > 0 {
		d.Quantity = strconv.Itoa(q.Quantity)
	}
	d.Destination = takeDraft(d.Destination, q.Destination)
	d.ShippingMethod = takeDraft(d.ShippingMethod, q.ShippingMethod)
	if d.ServiceFee == "" && q.ServiceFee > 0 {
		d.ServiceFee = formatAmount(q.ServiceFee)
	}

	for i := range d.Options {
		if i >= len(q.Options) {
			break
		}
		d.Options[i] = d.Options[i].mergeAuthoritative(q.Options[i])
	}

	d.Receiver.Name = takeDraft(d.Receiver.Name, q.Receiver.Name)
	d.Receiver.Phone = takeDraft(d.Receiver.Phone, q.Receiver.Phone)
	d.Receiver.Address = takeDraft(d.Receiver.Address, q.Receiver.Address)
	return d
}

func (o OptionDraft) mergeAuthoritative(opt PriceOption) OptionDraft {
	o.Title = takeDraft(o.Title, opt.Title)
	if o.UnitPrice == "" && opt.UnitPrice > 0 {
		o.UnitPrice = formatAmount(opt.UnitPrice)
	}
	if o.UnitWeight == "" && opt.UnitWeight > 0 {
		o.UnitWeight = formatAmount(opt.UnitWeight)
	}
	o.DeliveryTime = takeDraft(o.DeliveryTime, opt.DeliveryTime)
	o.Description = takeDraft(o.Description, opt.Description)
	o.ImageURL = takeDraft(o.ImageURL, opt.ImageURL)
	o.ImageURL2 = takeDraft(o.ImageURL2, opt.ImageURL2)
	return o
}

func takeDraft(draft, authoritative string) string {
	if draft != "" {
		return draft
	}
	return authoritative
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
