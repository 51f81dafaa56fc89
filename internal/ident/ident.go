// Package ident generates the short human-legible tokens used as order
// and payment identifiers.
//
// Tokens are produced from math/rand and carry no uniqueness guarantee
// under adversarial or massive-scale concurrent use. They are display
// identifiers for a demo-scale workflow, not security-relevant values.
package ident

import "math/rand/v2"

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Token returns prefix followed by n random base36 characters.
func Token(prefix string, n int) string {
	b := make([]byte, 0, len(prefix)+n)
	b = append(b, prefix...)
	for i := 0; i < n; i++ {
		b = append(b, alphabet[rand.IntN(len(alphabet))])
	}
	return string(b)
}

// NewOrderID returns a fresh order identifier, e.g. "ORD-7K2Q9X".
func NewOrderID() string { return Token("ORD-", 6) }

// NewPaymentID returns a fresh payment identifier, e.g. "PAY-A81B2C3D".
func NewPaymentID() string { return Token("PAY-", 8) }
