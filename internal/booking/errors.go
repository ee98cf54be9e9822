package booking

import (
	"errors"
	"fmt"
)

// Sentinel errors for structural validation failures.  These are
// reported immediately to the caller and never retried.
var (
	// ErrDateRequired is returned when no event date was supplied.
	ErrDateRequired = errors.New("event date is required")
	// ErrDateInPast is returned when the event date is before today.
	ErrDateInPast = errors.New("event date cannot be in the past")
	// ErrNotCombo is returned when component resolution is attempted
	// on a standalone menu item.
	ErrNotCombo = errors.New("menu item is not a combo")
	// ErrNestedCombo is returned when a combo component references
	// another combo.  Nesting is unsupported; the engine fails loudly
	// instead of recursing.
	ErrNestedCombo = errors.New("combo components must be standalone items")
	// ErrLedgerInconsistent signals that committed bookings exceed a
	// hall's capacity.  This should be impossible under transactional
	// admission; remaining capacity is clamped to zero when it occurs.
	ErrLedgerInconsistent = errors.New("committed tables exceed hall capacity")
)

// TooFewTablesError rejects a request below the configured minimum.
type TooFewTablesError struct {
	Tables int
	Min    int
}

func (e *TooFewTablesError) Error() string {
	return fmt.Sprintf("at least %d tables are required (requested %d)", e.Min, e.Tables)
}

// ExceedsCapacityError rejects a request the hall could never fit
// regardless of existing bookings.
type ExceedsCapacityError struct {
	Tables   int
	Capacity int
}

func (e *ExceedsCapacityError) Error() string {
	return fmt.Sprintf("requested %d tables exceeds hall capacity of %d", e.Tables, e.Capacity)
}

// CapacityError rejects a request because the remaining capacity on
// the date is insufficient.  Remaining carries the exact count so the
// caller can offer a corrected request; the engine never auto-reduces
// the requested table count.
type CapacityError struct {
	HallName  string
	Date      string
	Capacity  int
	Remaining int
}

func (e *CapacityError) Error() string {
	if e.Remaining == 0 {
		return fmt.Sprintf("hall %q is fully booked (%d tables) on %s", e.HallName, e.Capacity, e.Date)
	}
	return fmt.Sprintf("hall %q has only %d tables left on %s", e.HallName, e.Remaining, e.Date)
}

// InconsistencyError flags a degraded combo decomposition caused by a
// dangling component reference.  It only affects display detail, not
// the charged total, so callers surface it as a warning.  ItemID is
// zero when the deleted item's identity is no longer recoverable.
type InconsistencyError struct {
	ComboID uint64
	ItemID  uint64
}

func (e *InconsistencyError) Error() string {
	if e.ItemID == 0 {
		return fmt.Sprintf("combo %d references a deleted menu item", e.ComboID)
	}
	return fmt.Sprintf("combo %d references missing menu item %d", e.ComboID, e.ItemID)
}
