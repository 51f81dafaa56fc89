package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"orderflow/internal/apperr"
	"orderflow/internal/service/shared"
)

func TestConfirm(t *testing.T) {
	t.Parallel()

	svc := New(shared.Latency{})

	start := time.Now()
	got, err := svc.Confirm(context.Background(), "ORD-ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DeliveredAt.Before(start.UTC().Truncate(time.Second)) {
		t.Fatalf("deliveredAt %v earlier than call start %v", got.DeliveredAt, start)
	}
}

func TestConfirmRequiresOrderID(t *testing.T) {
	t.Parallel()

	svc := New(shared.Latency{})

	_, err := svc.Confirm(context.Background(), "")
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestConfirmRepeatedCallsAreFresh(t *testing.T) {
	t.Parallel()

	svc := New(shared.Latency{})
	times := []time.Time{
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 12, 0, 5, 0, time.UTC),
	}
	svc.now = func() time.Time {
		ts := times[0]
		if len(times) > 1 {
			times = times[1:]
		}
		return ts
	}

	first, err := svc.Confirm(context.Background(), "ORD-ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Confirm(context.Background(), "ORD-ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.DeliveredAt.After(first.DeliveredAt) {
		t.Fatalf("expected a later timestamp on re-confirmation, got %v then %v",
			first.DeliveredAt, second.DeliveredAt)
	}
}
