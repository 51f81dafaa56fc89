// Package httptransport implements the HTTP transport layer for the
// four stage endpoints.
package httptransport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"orderflow/internal/apperr"
	"orderflow/internal/catalog"
	"orderflow/internal/metrics"
	"orderflow/internal/model"
)

type searchService interface {
	Find(ctx context.Context, name string) (*catalog.Restaurant, error)
}

type orderService interface {
	Place(ctx context.Context, restaurantName, item string) (model.Order, error)
}

type paymentService interface {
	Process(ctx context.Context, orderID string, amount float64, forceFail bool) (model.Payment, error)
}

type deliveryService interface {
	Confirm(ctx context.Context, orderID string) (model.Delivery, error)
}

// Handler handles HTTP requests to the stage services.
type Handler struct {
	search         searchService
	orders         orderService
	payments       paymentService
	deliveries     deliveryService
	metrics        *metrics.StageMetrics
	requestTimeout time.Duration
}

// NewHandler returns a Handler over the stage services. metrics may be
// nil. If requestTimeout is non-positive, a default timeout is applied.
func NewHandler(search searchService, orders orderService, payments paymentService, deliveries deliveryService, m *metrics.StageMetrics, requestTimeout time.Duration) *Handler {
	if requestTimeout <= 0 {
		requestTimeout = 10 * time.Second
	}
	return &Handler{
		search:         search,
		orders:         orders,
		payments:       payments,
		deliveries:     deliveries,
		metrics:        m,
		requestTimeout: requestTimeout,
	}
}

// HandleSearch resolves a restaurant by name.
//
// GET /api/search?name=...
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	start := time.Now()
	rest, err := h.search.Find(ctx, r.URL.Query().Get("name"))
	h.observe("search", err, start)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SearchResponse{Name: rest.Name, Menu: rest.Menu})
}

// HandleOrder places an order.
//
// POST /api/order {restaurantName, item}
func (h *Handler) HandleOrder(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	start := time.Now()
	ord, err := h.orders.Place(ctx, req.RestaurantName, req.Item)
	h.observe("order", err, start)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.OrderResponse{
		Message: "Order placed",
		OrderID: ord.OrderID,
		Amount:  ord.Amount,
	})
}

// HandlePayment attempts a payment for an order.
//
// POST /api/payment {orderId, amount, forceFail?}
func (h *Handler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	var req model.PaymentRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Amount == nil {
		h.writeError(w, fmt.Errorf("payment: orderId and numeric amount required: %w", apperr.ErrInvalidInput))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	start := time.Now()
	pay, err := h.payments.Process(ctx, req.OrderID, *req.Amount, req.ForceFail)
	h.observe("payment", err, start)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.PaymentResponse{
		Message:   "Payment success",
		PaymentID: pay.PaymentID,
	})
}

// HandleDelivery confirms delivery of an order.
//
// GET /api/delivery?orderId=...
func (h *Handler) HandleDelivery(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	start := time.Now()
	del, err := h.deliveries.Confirm(ctx, r.URL.Query().Get("orderId"))
	h.observe("delivery", err, start)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.DeliveryResponse{
		Message:     "Delivered",
		DeliveredAt: del.DeliveredAt,
	})
}

// decode reads a JSON body into dst, rejecting unknown fields. It
// writes the error response itself and reports whether decoding
// succeeded.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.writeError(w, fmt.Errorf("invalid JSON: %w", apperr.ErrInvalidInput))
		return false
	}
	return true
}

func (h *Handler) observe(stage string, err error, start time.Time) {
	if h.metrics != nil {
		h.metrics.Observe(stage, err, time.Since(start))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apperr.HTTPStatus(err), model.ErrorPayload{
		Error: err.Error(),
		Kind:  apperr.Kind(err),
	})
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
