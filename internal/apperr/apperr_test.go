package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKind(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("payment: %w", ErrPaymentDeclined)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "invalid_input", err: ErrInvalidInput, want: "invalid_input"},
		{name: "not_found", err: ErrNotFound, want: "not_found"},
		{name: "item_unavailable", err: ErrItemUnavailable, want: "item_unavailable"},
		{name: "payment_declined", err: ErrPaymentDeclined, want: "payment_declined"},
		{name: "payment_declined_wrapped", err: wrapped, want: "payment_declined"},
		{name: "transport", err: ErrTransport, want: "transport"},
		{name: "deadline", err: context.DeadlineExceeded, want: "timeout"},
		{name: "canceled", err: context.Canceled, want: "canceled"},
		{name: "unknown", err: errors.New("boom"), want: "internal"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Kind(tt.err); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFromKindRoundTrip(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{
		"invalid_input", "not_found", "item_unavailable",
		"payment_declined", "transport", "timeout", "canceled",
	} {
		kind := kind
		t.Run(kind, func(t *testing.T) {
			t.Parallel()
			err := FromKind(kind)
			if err == nil {
				t.Fatalf("expected sentinel for %q", kind)
			}
			if got := Kind(err); got != kind {
				t.Fatalf("round trip: expected %q, got %q", kind, got)
			}
		})
	}

	if FromKind("internal") != nil {
		t.Fatal("internal must not map to a sentinel")
	}
	if FromKind("") != nil {
		t.Fatal("empty kind must not map to a sentinel")
	}
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("order: %w", ErrItemUnavailable)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid_input", err: ErrInvalidInput, want: http.StatusBadRequest},
		{name: "not_found", err: ErrNotFound, want: http.StatusNotFound},
		{name: "item_unavailable", err: ErrItemUnavailable, want: http.StatusBadRequest},
		{name: "item_unavailable_wrapped", err: wrapped, want: http.StatusBadRequest},
		{name: "payment_declined", err: ErrPaymentDeclined, want: http.StatusPaymentRequired},
		{name: "transport", err: ErrTransport, want: http.StatusBadGateway},
		{name: "deadline", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{name: "canceled", err: context.Canceled, want: http.StatusRequestTimeout},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
