// Package catalog provides the restaurant catalog the workflow reads
// from. The catalog is an external collaborator: read-only for the
// workflow, pre-populated with sample restaurants.
package catalog

import (
	"context"
	"strings"
)

// MenuItem is a priced entry on a restaurant menu.
type MenuItem struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

// Restaurant is a named catalog entry with an ordered menu.
type Restaurant struct {
	Name string     `json:"name"`
	Menu []MenuItem `json:"menu"`
}

// Item scans the menu for a case-insensitive whole-name match.
func (r *Restaurant) Item(name string) (MenuItem, bool) {
	for _, m := range r.Menu {
		if strings.EqualFold(m.Item, name) {
			return m, true
		}
	}
	return MenuItem{}, false
}

// Store looks up catalog entries by restaurant name.
type Store interface {
	// Find matches name against the whole restaurant name,
	// case-insensitively. A miss returns apperr.ErrNotFound.
	Find(ctx context.Context, name string) (*Restaurant, error)
}

// Seed returns the sample restaurants the catalog ships with.
func Seed() []Restaurant {
	return []Restaurant{
		{
			Name: "Burger Palace",
			Menu: []MenuItem{
				{Item: "Cheese Burger", Price: 5},
				{Item: "Veg Burger", Price: 4},
				{Item: "Fries", Price: 2},
			},
		},
		{
			Name: "Pasta Hub",
			Menu: []MenuItem{
				{Item: "Alfredo Pasta", Price: 7},
				{Item: "Pesto Pasta", Price: 8},
			},
		},
	}
}
