package entities

import "time"

// QuotationStatus represents the lifecycle of a sourcing quotation.
//
// Domain notes:
//   - A quotation starts Pending and is normally approved as a side effect of
//     a successful payment referencing it, not by a direct action.
//   - Approved and Rejected are terminal.

type QuotationStatus string

const (
	QuotationStatusPending  QuotationStatus = "pending"
	QuotationStatusApproved QuotationStatus = "approved"
	QuotationStatusRejected QuotationStatus = "rejected"
)

var quotationValidNext = map[QuotationStatus]map[QuotationStatus]bool{
	QuotationStatusPending:  {QuotationStatusApproved: true, QuotationStatusRejected: true},
	QuotationStatusApproved: {},
	QuotationStatusRejected: {},
}

func (s QuotationStatus) CanTransition(to QuotationStatus) bool {
	return quotationValidNext[s][to]
}

// PriceOption is one of up to three alternative priced offers on a quotation.
type PriceOption struct {
	Title        string  `json:"title"`
	UnitPrice    float64 `json:"unit_price"`
	UnitWeight   float64 `json:"unit_weight"`
	DeliveryTime string  `json:"delivery_time"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url,omitempty"`
	ImageURL2    string  `json:"image_url2,omitempty"`
}

// Receiver is the delivery contact sub-record. Quotations and shipments carry
// independent copies that may diverge.
type Receiver struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r Receiver) IsZero() bool {
	return r.Name == "" && r.Phone == "" && r.Address == ""
}

// Quotation is a priced sourcing request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Identity:
//   - ID is the opaque primary key.
//   - RefCode is the human-facing reference (QT-xxxx), generated independently
//     and never guaranteed equal to ID. Legacy payment rows may link to either.
//
// Invariant: SelectedOption is 1-based and at most one option is selected at a
// time (0 means none). Option 1 is mandatory, option 3 requires option 2.
type Quotation struct {
	ID             string          `json:"id"`
	RefCode        string          `json:"ref_code"`
	UserID         string          `json:"user_id"`
	ProductName    string          `json:"product_name"`
	ProductLink    string          `json:"product_link,omitempty"`
	Quantity       int             `json:"quantity"`
	Destination    string          `json:"destination"`
	ShippingMethod string          `json:"shipping_method"`
	Options        []PriceOption   `json:"options,omitempty"`
	SelectedOption int             `json:"selected_option"`
	ServiceFee     float64         `json:"service_fee"`
	Status         QuotationStatus `json:"status"`
	Receiver       Receiver        `json:"receiver"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// SelectedTotal is the amount a payment covering this quotation must carry:
// selected option unit price times quantity, plus the service fee. Zero when
// no option is selected yet.
func (q Quotation) SelectedTotal() float64 {
	if q.SelectedOption < 1 || q.SelectedOption > len(q.Options) {
		return 0
	}
	opt := q.Options[q.SelectedOption-1]
	return opt.UnitPrice*float64(q.Quantity) + q.ServiceFee
}
