package booking

import (
	"context"
	"time"

	"github.com/iliyamo/wedding-venue-booking/internal/model"
)

// Ledger computes remaining table capacity per hall per date from
// committed bookings.  It holds no state of its own: every call
// re-reads the store so the admission check and the final commit
// never act on a cached figure.
type Ledger struct {
	store Store
}

// NewLedger returns a Ledger bound to the given store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// Remaining returns hall.Capacity minus the tables already committed
// for the hall on the given date.  The result is never negative: if
// the committed sum exceeds capacity (an oversell that correct
// transactional admission prevents) the method returns 0 together
// with ErrLedgerInconsistent so the caller can surface the problem.
func (l *Ledger) Remaining(ctx context.Context, hall model.Hall, date time.Time) (int, error) {
	booked, err := l.store.TablesBooked(ctx, hall.ID, date)
	if err != nil {
		return 0, err
	}
	remaining := hall.Capacity - booked
	if remaining < 0 {
		return 0, ErrLedgerInconsistent
	}
	return remaining, nil
}
