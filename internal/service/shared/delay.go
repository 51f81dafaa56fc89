// Package shared provides delay and sleep helpers used across the
// stage services.
package shared

import (
	"context"
	"math/rand/v2"
	"time"
)

// Range is a bounded randomized delay.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Pick draws a delay uniformly from the range.
func (r Range) Pick() time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rand.N(r.Max-r.Min)
}

// Latency models the artificial per-stage delays that simulate network
// and processing time. Scale stretches or shrinks every range; a zero
// value disables delays entirely, which keeps tests fast.
type Latency struct {
	Ranges map[string]Range
	Scale  float64
}

// DefaultLatency returns the stage delay ranges, increasing per stage.
func DefaultLatency() Latency {
	return Latency{
		Scale: 1,
		Ranges: map[string]Range{
			"search":   {Min: 600 * time.Millisecond, Max: 1200 * time.Millisecond},
			"order":    {Min: 700 * time.Millisecond, Max: 1400 * time.Millisecond},
			"payment":  {Min: 800 * time.Millisecond, Max: 1600 * time.Millisecond},
			"delivery": {Min: 1000 * time.Millisecond, Max: 2000 * time.Millisecond},
		},
	}
}

// Wait blocks for the stage's delay or until ctx is done.
func (l Latency) Wait(ctx context.Context, stage string) error {
	if l.Scale <= 0 {
		return nil
	}
	r, ok := l.Ranges[stage]
	if !ok {
		return nil
	}
	d := time.Duration(float64(r.Pick()) * l.Scale)
	return SleepOrDone(ctx, d)
}

// SleepOrDone waits for the duration or returns early on context cancellation.
func SleepOrDone(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
