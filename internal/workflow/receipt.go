package workflow

import "orderflow/internal/model"

// Receipt labels, advanced as each stage completes.
const (
	ReceiptOrderPlaced = "order_placed"
	ReceiptPaid        = "paid"
	ReceiptDelivered   = "delivered"
)

// Receipt is the accumulating snapshot of results across successful
// stages. Sections are added only on a stage's success; a failed stage
// leaves the receipt as it was.
type Receipt struct {
	Stage    string          `json:"stage,omitempty"`
	Order    *model.Order    `json:"order,omitempty"`
	Payment  *model.Payment  `json:"payment,omitempty"`
	Delivery *model.Delivery `json:"delivery,omitempty"`
}

// SetOrder records a placed order and advances the stage label.
func (r *Receipt) SetOrder(o model.Order) {
	r.Order = &o
	r.Stage = ReceiptOrderPlaced
}

// SetPayment records a successful payment and advances the stage label.
func (r *Receipt) SetPayment(p model.Payment) {
	r.Payment = &p
	r.Stage = ReceiptPaid
}

// SetDelivery records a delivery confirmation and advances the stage label.
func (r *Receipt) SetDelivery(d model.Delivery) {
	r.Delivery = &d
	r.Stage = ReceiptDelivered
}
