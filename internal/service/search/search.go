// Package search implements the restaurant search stage: a validated,
// case-insensitive catalog lookup.
package search

import (
	"context"
	"fmt"
	"strings"

	"orderflow/internal/apperr"
	"orderflow/internal/catalog"
	"orderflow/internal/service/shared"
)

// Service resolves restaurant names against the catalog.
type Service struct {
	store catalog.Store
	lat   shared.Latency
}

// New creates a search service backed by store.
func New(store catalog.Store, lat shared.Latency) *Service {
	return &Service{store: store, lat: lat}
}

// Find resolves name to a catalog entry. The name must be non-empty
// after trimming; the match anchors the whole name, case-insensitively.
func (s *Service) Find(ctx context.Context, name string) (*catalog.Restaurant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("search: restaurant name required: %w", apperr.ErrInvalidInput)
	}

	if err := s.lat.Wait(ctx, "search"); err != nil {
		return nil, err
	}

	return s.store.Find(ctx, name)
}
