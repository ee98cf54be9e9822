package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/wedding-venue-booking/internal/model"
)

func TestRemainingReflectsCommittedBookings(t *testing.T) {
	hall := model.Hall{ID: 1, Name: "Rose Hall", Capacity: 100}
	store := newFakeStore(hall)
	ledger := NewLedger(store)
	d := date("2026-10-01")

	remaining, err := ledger.Remaining(context.Background(), hall, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining != 100 {
		t.Fatalf("remaining = %d, want 100", remaining)
	}

	store.commit(hall.ID, d, 70)
	remaining, err = ledger.Remaining(context.Background(), hall, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining != 30 {
		t.Fatalf("remaining = %d, want 30", remaining)
	}
}

func TestRemainingIsScopedToDate(t *testing.T) {
	hall := model.Hall{ID: 1, Name: "Rose Hall", Capacity: 100}
	store := newFakeStore(hall)
	ledger := NewLedger(store)
	store.commit(hall.ID, date("2026-10-01"), 100)

	remaining, err := ledger.Remaining(context.Background(), hall, date("2026-10-02"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining != 100 {
		t.Fatalf("other date remaining = %d, want 100", remaining)
	}
}

func TestRemainingClampsOversell(t *testing.T) {
	hall := model.Hall{ID: 1, Name: "Rose Hall", Capacity: 100}
	store := newFakeStore(hall)
	ledger := NewLedger(store)
	d := date("2026-10-01")
	store.commit(hall.ID, d, 130)

	remaining, err := ledger.Remaining(context.Background(), hall, d)
	if !errors.Is(err, ErrLedgerInconsistent) {
		t.Fatalf("err = %v, want ErrLedgerInconsistent", err)
	}
	if remaining != 0 {
		t.Fatalf("remaining = %d, want 0 on oversold ledger", remaining)
	}
}
