// Package payment implements the payment stage. Authorization is
// simulated: attempts decline with a configurable probability, or
// deterministically when forced. Every attempt is independent, so a
// decline may simply be retried with the same order and amount.
package payment

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"orderflow/internal/apperr"
	"orderflow/internal/ident"
	"orderflow/internal/model"
	"orderflow/internal/service/shared"
)

// DefaultDeclineRate is the probability an unforced attempt declines.
const DefaultDeclineRate = 0.15

// Service authorizes payments.
type Service struct {
	declineRate float64
	lat         shared.Latency
	roll        func() float64
}

// New creates a payment service. A negative declineRate falls back to
// DefaultDeclineRate; zero disables random declines.
func New(declineRate float64, lat shared.Latency) *Service {
	if declineRate < 0 {
		declineRate = DefaultDeclineRate
	}
	return &Service{
		declineRate: declineRate,
		lat:         lat,
		roll:        rand.Float64,
	}
}

// Process attempts to authorize amount against orderID. The amount is
// trusted as supplied; there is no stored order to re-verify against.
func (s *Service) Process(ctx context.Context, orderID string, amount float64, forceFail bool) (model.Payment, error) {
	if orderID == "" {
		return model.Payment{}, fmt.Errorf("payment: orderId required: %w", apperr.ErrInvalidInput)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return model.Payment{}, fmt.Errorf("payment: numeric amount required: %w", apperr.ErrInvalidInput)
	}

	if err := s.lat.Wait(ctx, "payment"); err != nil {
		return model.Payment{}, err
	}

	if forceFail || s.roll() < s.declineRate {
		return model.Payment{}, fmt.Errorf("payment: order %s: %w", orderID, apperr.ErrPaymentDeclined)
	}

	return model.Payment{PaymentID: ident.NewPaymentID()}, nil
}
