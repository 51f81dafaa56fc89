// Package order implements the order placement stage. It validates the
// requested item against the catalog and synthesizes an order record.
// Nothing is persisted; the caller is the sole holder of the record.
package order

import (
	"context"
	"fmt"
	"strings"

	"orderflow/internal/apperr"
	"orderflow/internal/catalog"
	"orderflow/internal/ident"
	"orderflow/internal/model"
	"orderflow/internal/service/shared"
)

// Service places orders against the catalog.
type Service struct {
	store catalog.Store
	lat   shared.Latency
}

// New creates an order service backed by store.
func New(store catalog.Store, lat shared.Latency) *Service {
	return &Service{store: store, lat: lat}
}

// Place validates the restaurant and item and returns a fresh order
// record carrying the matched item's price.
func (s *Service) Place(ctx context.Context, restaurantName, item string) (model.Order, error) {
	restaurantName = strings.TrimSpace(restaurantName)
	item = strings.TrimSpace(item)
	if restaurantName == "" || item == "" {
		return model.Order{}, fmt.Errorf("order: restaurantName and item required: %w", apperr.ErrInvalidInput)
	}

	if err := s.lat.Wait(ctx, "order"); err != nil {
		return model.Order{}, err
	}

	rest, err := s.store.Find(ctx, restaurantName)
	if err != nil {
		return model.Order{}, err
	}

	menuItem, ok := rest.Item(item)
	if !ok {
		return model.Order{}, fmt.Errorf("order: %q at %q: %w", item, rest.Name, apperr.ErrItemUnavailable)
	}

	return model.Order{
		OrderID: ident.NewOrderID(),
		Amount:  menuItem.Price,
	}, nil
}
