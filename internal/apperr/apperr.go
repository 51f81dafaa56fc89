// Package apperr defines the domain error sentinels shared across the
// order workflow and their classification for transport layers.
package apperr

import (
	"context"
	"errors"
	"net/http"
)

var (
	// ErrInvalidInput marks malformed or missing caller-supplied fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks a catalog lookup miss.
	ErrNotFound = errors.New("restaurant not found")
	// ErrItemUnavailable marks a valid restaurant with an unknown menu item.
	ErrItemUnavailable = errors.New("item not available")
	// ErrPaymentDeclined marks a declined payment attempt. Declines are an
	// expected, retryable outcome rather than an exceptional condition.
	ErrPaymentDeclined = errors.New("payment declined")
	// ErrTransport marks a network-level failure, distinct from a stage's
	// own business failure.
	ErrTransport = errors.New("transport failure")
)

// Kind returns a stable classification string for err.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""

	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"

	case errors.Is(err, ErrNotFound):
		return "not_found"

	case errors.Is(err, ErrItemUnavailable):
		return "item_unavailable"

	case errors.Is(err, ErrPaymentDeclined):
		return "payment_declined"

	case errors.Is(err, ErrTransport):
		return "transport"

	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"

	case errors.Is(err, context.Canceled):
		return "canceled"

	default:
		return "internal"
	}
}

// FromKind maps a classification string back to its sentinel. Unknown
// kinds return nil so callers can fall back to a generic error.
func FromKind(kind string) error {
	switch kind {
	case "invalid_input":
		return ErrInvalidInput
	case "not_found":
		return ErrNotFound
	case "item_unavailable":
		return ErrItemUnavailable
	case "payment_declined":
		return ErrPaymentDeclined
	case "transport":
		return ErrTransport
	case "timeout":
		return context.DeadlineExceeded
	case "canceled":
		return context.Canceled
	default:
		return nil
	}
}

// HTTPStatus maps err to the status code the API responds with.
// Declined payments use 402, matching the payment endpoint contract.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest

	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, ErrItemUnavailable):
		return http.StatusBadRequest

	case errors.Is(err, ErrPaymentDeclined):
		return http.StatusPaymentRequired

	case errors.Is(err, ErrTransport):
		return http.StatusBadGateway

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout

	default:
		return http.StatusInternalServerError
	}
}
