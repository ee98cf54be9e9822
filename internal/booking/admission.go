package booking

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/wedding-venue-booking/internal/model"
)

// Admission decides whether a prospective booking may proceed.  It
// applies cheap structural checks first and consults the capacity
// ledger last, so obviously invalid requests never trigger a ledger
// read.
type Admission struct {
	store  Store
	ledger *Ledger
	clock  Clock
	policy Policy
}

// NewAdmission constructs an Admission controller.  All dependencies
// must be non-nil.
func NewAdmission(store Store, ledger *Ledger, clock Clock, policy Policy) *Admission {
	if store == nil || ledger == nil || clock == nil {
		panic("nil dependency passed to NewAdmission")
	}
	return &Admission{store: store, ledger: ledger, clock: clock, policy: policy}
}

// HallAvailability reports a hall together with its remaining table
// capacity on the evaluated date.
type HallAvailability struct {
	Hall      model.Hall
	Remaining int
}

// Availability is the result of evaluating a date.  When AllLocked is
// true every hall is fully booked and the caller must disable booking
// creation for that date entirely (read-only mode), not merely hide
// the full halls.
type Availability struct {
	Halls     []HallAvailability
	AllLocked bool
}

// Evaluate lists the halls that still have remaining capacity on the
// given date.  A hall is included iff its remaining capacity is
// strictly positive.  AllLocked is set when at least one hall exists
// but none is available.  Evaluating the same date twice with no
// intervening bookings yields identical results.
func (a *Admission) Evaluate(ctx context.Context, date time.Time) (Availability, error) {
	halls, err := a.store.ListHalls(ctx)
	if err != nil {
		return Availability{}, err
	}
	out := Availability{Halls: make([]HallAvailability, 0, len(halls))}
	for _, hall := range halls {
		remaining, err := a.ledger.Remaining(ctx, hall, date)
		if err != nil {
			// An inconsistent ledger means the hall is full; keep
			// evaluating the rest instead of aborting the overview.
			if errors.Is(err, ErrLedgerInconsistent) {
				continue
			}
			return Availability{}, err
		}
		if remaining > 0 {
			out.Halls = append(out.Halls, HallAvailability{Hall: hall, Remaining: remaining})
		}
	}
	out.AllLocked = len(out.Halls) == 0 && len(halls) > 0
	return out, nil
}

// Validate checks a prospective booking against the admission rules.
// Rules run in priority order and the first failing rule wins:
//
//  1. the date must be set,
//  2. the date must not be in the past,
//  3. the table count must meet the configured minimum,
//  4. the table count must not exceed the hall's capacity,
//  5. the remaining capacity on the date must cover the request.
//
// A nil return means the booking is admissible against the ledger
// state read during this call.  Callers committing a booking must
// re-check inside the same transaction as the insert; see
// repository.BookingRepo.CreateTx.
func (a *Admission) Validate(ctx context.Context, hall model.Hall, date time.Time, tables int) error {
	if date.IsZero() {
		return ErrDateRequired
	}
	if date.Before(a.clock.Today()) {
		return ErrDateInPast
	}
	if tables < a.policy.MinTables {
		return &TooFewTablesError{Tables: tables, Min: a.policy.MinTables}
	}
	if tables > hall.Capacity {
		return &ExceedsCapacityError{Tables: tables, Capacity: hall.Capacity}
	}
	remaining, err := a.ledger.Remaining(ctx, hall, date)
	if err != nil && !errors.Is(err, ErrLedgerInconsistent) {
		return err
	}
	if tables > remaining {
		return &CapacityError{
			HallName:  hall.Name,
			Date:      date.Format("2006-01-02"),
			Capacity:  hall.Capacity,
			Remaining: remaining,
		}
	}
	return nil
}
