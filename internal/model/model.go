// Package model defines the request and response payloads used by the API.
// It keeps transport-level types in one place for reuse by the server
// handlers and the HTTP client.
package model

import (
	"time"

	"orderflow/internal/catalog"
)

// Order is the record produced by a successful order placement. The
// caller is its sole holder; later stages receive its fields back.
type Order struct {
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
}

// Payment is produced only by a successful payment attempt.
type Payment struct {
	PaymentID string `json:"paymentId"`
}

// Delivery is produced by a delivery confirmation. Each confirmation is
// fresh; re-invoking yields a later timestamp.
type Delivery struct {
	DeliveredAt time.Time `json:"deliveredAt"`
}

// SearchResponse is the search endpoint's success payload.
type SearchResponse struct {
	Name string             `json:"name"`
	Menu []catalog.MenuItem `json:"menu"`
}

// OrderRequest is the order endpoint's input payload.
type OrderRequest struct {
	RestaurantName string `json:"restaurantName"`
	Item           string `json:"item"`
}

// OrderResponse is the order endpoint's success payload.
type OrderResponse struct {
	Message string  `json:"message"`
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
}

// PaymentRequest is the payment endpoint's input payload. Amount is a
// pointer so a missing field is distinguishable from zero.
type PaymentRequest struct {
	OrderID   string   `json:"orderId"`
	Amount    *float64 `json:"amount"`
	ForceFail bool     `json:"forceFail,omitempty"`
}

// PaymentResponse is the payment endpoint's success payload.
type PaymentResponse struct {
	Message   string `json:"message"`
	PaymentID string `json:"paymentId"`
}

// DeliveryResponse is the delivery endpoint's success payload.
type DeliveryResponse struct {
	Message     string    `json:"message"`
	DeliveredAt time.Time `json:"deliveredAt"`
}

// ErrorPayload describes an error response.
type ErrorPayload struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
