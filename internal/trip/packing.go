// Package trip implements the mutation operations on the four trip
// collections. Every operation is a pure function: it takes the current
// collection and returns the complete next value without mutating its
// input. Callers hand the result to the state store, which owns the
// collections.
package trip

import (
	"fmt"
	"math"
	"strings"

	"github.com/yutarok/tabinote/internal/domain"
)

// AddItem appends a new packing item with a fresh id. The text is
// required and the category must be one of the known values.
func AddItem(items []domain.PackingItem, text string, category domain.ItemCategory) ([]domain.PackingItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return items, fmt.Errorf("%w: text is required", domain.ErrValidation)
	}
	if !domain.ValidItemCategory(category) {
		return items, fmt.Errorf("%w: unknown item category %q", domain.ErrValidation, category)
	}

	next := make([]domain.PackingItem, len(items), len(items)+1)
	copy(next, items)
	return append(next, domain.PackingItem{
		ID:       domain.NewID(),
		Text:     text,
		Checked:  false,
		Category: category,
	}), nil
}

// DeleteItem removes the item with the given id. Deleting an id that is
// not present is a no-op; survivors keep their order.
func DeleteItem(items []domain.PackingItem, id string) []domain.PackingItem {
	next := make([]domain.PackingItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	return next
}

// ToggleItem flips the checked flag of one item by id.
func ToggleItem(items []domain.PackingItem, id string) ([]domain.PackingItem, error) {
	next := make([]domain.PackingItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].ID == id {
			next[i].Checked = !next[i].Checked
			return next, nil
		}
	}
	return items, fmt.Errorf("%w: packing item %s", domain.ErrNotFound, id)
}

// Completion returns the packing progress as a whole percentage,
// round(100 * checked / total), and 0 for an empty list.
func Completion(items []domain.PackingItem) int {
	if len(items) == 0 {
		return 0
	}
	checked := 0
	for _, it := range items {
		if it.Checked {
			checked++
		}
	}
	return int(math.Round(100 * float64(checked) / float64(len(items))))
}
