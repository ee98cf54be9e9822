// Package booking implements the admission and pricing engine for
// wedding-venue reservations: the capacity ledger that tracks tables
// committed per hall per date, the admission controller that accepts
// or rejects prospective bookings, the catalog store that resolves
// combo contents, and the pricing engine that computes invoice totals.
//
// The engine never talks to the database directly.  It consumes the
// narrow Store and Clock interfaces below so that handlers can wire
// the SQL repositories in while tests substitute in-memory fakes.
package booking

import (
	"context"
	"time"

	"github.com/iliyamo/wedding-venue-booking/internal/model"
)

// Store is the persistence surface the engine reads from.  All
// implementations must return committed data only; the engine relies
// on TablesBooked reflecting every previously committed booking.
type Store interface {
	// ListHalls returns every hall ordered by name.
	ListHalls(ctx context.Context) ([]model.Hall, error)
	// TablesBooked returns the sum of tables across all bookings for
	// the hall on the given event date.
	TablesBooked(ctx context.Context, hallID uint64, date time.Time) (int, error)
	// ComboComponents returns the authored component rows of a combo
	// together with the referenced menu items, ordered by item title.
	// Components whose menu item no longer exists are returned with a
	// zero-ID Item so callers can flag the dangling reference.
	ComboComponents(ctx context.Context, comboID uint64) ([]Component, error)
}

// Component pairs a component menu item with the quantity the combo
// contains.  Item.ID == 0 marks a dangling reference (the component
// was deleted from the catalog after the combo was authored).
type Component struct {
	Item     model.MenuItem
	Quantity int
}

// Clock abstracts "today" for past-date rejection so tests can pin
// the current date.
type Clock interface {
	Today() time.Time
}

// SystemClock returns the wall-clock date in UTC, truncated to
// midnight.  Event dates carry date precision only.
type SystemClock struct{}

func (SystemClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Policy carries deployment-configurable admission rules.  The
// minimum table count varies between deployments and must never be
// treated as a constant.
type Policy struct {
	MinTables int
}
