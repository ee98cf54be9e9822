package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/iliyamo/wedding-venue-booking/internal/model"
)

// fakeStore is an in-memory Store used across the engine tests.  It
// tracks committed table counts per hall per date the same way the
// SQL repository aggregates them.
type fakeStore struct {
	halls      []model.Hall
	booked     map[string]int
	components map[uint64][]Component
}

func newFakeStore(halls ...model.Hall) *fakeStore {
	return &fakeStore{
		halls:      halls,
		booked:     make(map[string]int),
		components: make(map[uint64][]Component),
	}
}

func ledgerKey(hallID uint64, date time.Time) string {
	return fmt.Sprintf("%d|%s", hallID, date.Format("2006-01-02"))
}

// commit records a booking the way a committed insert would.
func (f *fakeStore) commit(hallID uint64, date time.Time, tables int) {
	f.booked[ledgerKey(hallID, date)] += tables
}

func (f *fakeStore) ListHalls(ctx context.Context) ([]model.Hall, error) {
	return f.halls, nil
}

func (f *fakeStore) TablesBooked(ctx context.Context, hallID uint64, date time.Time) (int, error) {
	return f.booked[ledgerKey(hallID, date)], nil
}

func (f *fakeStore) ComboComponents(ctx context.Context, comboID uint64) ([]Component, error) {
	return f.components[comboID], nil
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// fixedClock pins Today for deterministic past-date checks.
type fixedClock struct{ today time.Time }

func (c fixedClock) Today() time.Time { return c.today }
