// Package delivery implements the delivery confirmation stage. It
// models a dispatch system that always eventually confirms: every call
// succeeds with a fresh timestamp, with no dedup between calls.
package delivery

import (
	"context"
	"fmt"
	"time"

	"orderflow/internal/apperr"
	"orderflow/internal/model"
	"orderflow/internal/service/shared"
)

// Service confirms deliveries.
type Service struct {
	lat shared.Latency
	now func() time.Time
}

// New creates a delivery service.
func New(lat shared.Latency) *Service {
	return &Service{lat: lat, now: time.Now}
}

// Confirm records a delivery confirmation for orderID.
func (s *Service) Confirm(ctx context.Context, orderID string) (model.Delivery, error) {
	if orderID == "" {
		return model.Delivery{}, fmt.Errorf("delivery: orderId required: %w", apperr.ErrInvalidInput)
	}

	if err := s.lat.Wait(ctx, "delivery"); err != nil {
		return model.Delivery{}, err
	}

	return model.Delivery{DeliveredAt: s.now().UTC()}, nil
}
