package ident

import (
	"strings"
	"testing"
)

func TestTokenFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		gen    func() string
		prefix string
		length int
	}{
		{name: "order", gen: NewOrderID, prefix: "ORD-", length: 10},
		{name: "payment", gen: NewPaymentID, prefix: "PAY-", length: 12},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id := tt.gen()
			if !strings.HasPrefix(id, tt.prefix) {
				t.Fatalf("expected prefix %q, got %q", tt.prefix, id)
			}
			if len(id) != tt.length {
				t.Fatalf("expected length %d, got %q", tt.length, id)
			}
			for _, c := range id[len(tt.prefix):] {
				if !strings.ContainsRune(alphabet, c) {
					t.Fatalf("unexpected character %q in %q", c, id)
				}
			}
		})
	}
}

func TestTokenDistinct(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewOrderID()
		if seen[id] {
			t.Fatalf("duplicate token %q after %d draws", id, i)
		}
		seen[id] = true
	}
}
