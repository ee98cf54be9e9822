package booking

import (
	"context"

	"github.com/iliyamo/wedding-venue-booking/internal/model"
)

// Catalog resolves combo menu items into their component dishes.
// Components are looked up on every call rather than memoized: the
// catalog can change between bookings and a stale decomposition would
// misdescribe what a combo contains.
type Catalog struct {
	store Store
}

// NewCatalog returns a Catalog bound to the given store.
func NewCatalog(store Store) *Catalog {
	return &Catalog{store: store}
}

// IsCombo reports whether the item is a combo, by kind flag only.
func (c *Catalog) IsCombo(item model.MenuItem) bool { return item.IsCombo() }

// ResolveComponents returns the ordered component list of a combo.
//
// A combo with no authored rows yields an empty slice and no error;
// the caller is responsible for marking it "not configured".  A
// component referencing a menu item that was deleted after the combo
// was authored is dropped from the result and reported through an
// *InconsistencyError alongside the partial decomposition, so pricing
// and display can degrade gracefully instead of aborting.  A
// component that is itself a combo fails with ErrNestedCombo; the
// engine never recurses into nested combos.
func (c *Catalog) ResolveComponents(ctx context.Context, combo model.MenuItem) ([]Component, error) {
	if !combo.IsCombo() {
		return nil, ErrNotCombo
	}
	rows, err := c.store.ComboComponents(ctx, combo.ID)
	if err != nil {
		return nil, err
	}
	var degraded *InconsistencyError
	out := make([]Component, 0, len(rows))
	for _, row := range rows {
		if row.Item.ID == 0 {
			// Dangling reference: keep the partial result, remember
			// the first inconsistency for the caller.
			if degraded == nil {
				degraded = &InconsistencyError{ComboID: combo.ID}
			}
			continue
		}
		if row.Item.IsCombo() {
			return nil, ErrNestedCombo
		}
		out = append(out, row)
	}
	if degraded != nil {
		return out, degraded
	}
	return out, nil
}
