package model

import "time"

// Menu item kinds.  A combo is priced as a single catalog entry;
// its component rows exist for display only.
const (
	KindSingle = "single"
	KindCombo  = "combo"
)

// MenuItem is a catalog entry offered to bookings.  Kind is either
// "single" (a standalone dish) or "combo" (a bundle documented by
// ComboComponent rows).  This struct corresponds to a row in the
// `menu_items` table.
//
// Fields:
//  ID         – primary key identifier.
//  Title      – display title of the dish or combo.
//  PriceCents – unit price in cents (a combo carries its own flat price).
//  Kind       – "single" or "combo".
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type MenuItem struct {
	ID         uint64    // menu_items.id
	Title      string    // menu_items.title
	PriceCents int64     // menu_items.price_cents
	Kind       string    // menu_items.kind
	CreatedAt  time.Time // menu_items.created_at
	UpdatedAt  time.Time // menu_items.updated_at
}

// IsCombo reports whether the item is a combo by its kind flag.
// Callers must never infer combo-ness from the title.
func (m MenuItem) IsCombo() bool { return m.Kind == KindCombo }

// ComboComponent links a combo menu item to one of its standalone
// component items with a quantity.  Rows are authored alongside the
// combo and are read-only from the booking engine's perspective.
// This struct corresponds to a row in the `combo_items` table.
//
// Fields:
//  ComboID  – menu item ID of the combo (kind = "combo").
//  ItemID   – menu item ID of the component (must be kind "single").
//  Quantity – how many units of the component the combo contains (>= 1).
type ComboComponent struct {
	ComboID  uint64 // combo_items.combo_id
	ItemID   uint64 // combo_items.item_id
	Quantity int    // combo_items.quantity
}
