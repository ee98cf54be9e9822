package booking

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/iliyamo/wedding-venue-booking/internal/model"
)

func newAdmission(store *fakeStore, today time.Time) *Admission {
	ledger := NewLedger(store)
	return NewAdmission(store, ledger, fixedClock{today: today}, Policy{MinTables: 30})
}

func TestValidateRejectsMissingDate(t *testing.T) {
	hall := model.Hall{ID: 1, Name: "Rose Hall", Capacity: 100}
	a := newAdmission(newFakeStore(hall), date("2026-09-01"))

	err := a.Validate(context.Background(), hall, time.Time{}, 30)
	if !errors.Is(err, ErrDateRequired) {
		t.Fatalf("err = %v, want ErrDateRequired", err)
	}
}

func TestValidateRejectsPastDate(t *testing.T) {
	hall := model.Hall{ID: 1, Name: "Rose Hall", Capacity: 100}
	a := newAdmission(newFakeStore(hall), date("2026-09-01"))

	err := a.Validate(context.Background(), hall, date("2026-08-31"), 30)
	if !errors.Is(err, ErrDateInPast) {
		t.Fatalf("err = %v, want ErrDateInPast", err)
	}
	if err := a.Validate(context.Background(), hall, date("2026-09-01"), 30); err != nil {
		t.Fatalf("booking for today rejected: %v", err)
	}
}

func TestValidateRejectsBelowMinimum(t *testing.T) {
	hall := model.Hall{ID: 1, Name: "Rose Hall", Capacity: 100}
	a := newAdmission(newFakeStore(hall), date("2026-09-01"))

	err := a.Validate(context.Background(), hall, date("2026-10-01"), 29)
	var tooFew *TooFewTablesError
	if !errors.As(err, &tooFew) {
		t.Fatalf("err = %v, want *TooFewTablesError", err)
	}
	if tooFew.Min != 30 || tooFew.Tables != 29 {
		t.Fatalf("unexpected detail: %+v", tooFew)
	}
}

func TestValidateRejectsOverCapacityRegardlessOfLedger(t *testing.T) {
	hall := model.Hall{ID: 1, Name: "Rose Hall", Capacity: 100}
	a := newAdmission(newFakeStore(hall), date("2026-09-01"))

	err := a.Validate(context.Background(), hall, date("2026-10-01"), 150)
	var exceeds *ExceedsCapacityError
	if !errors.As(err, &exceeds) {
		t.Fatalf("err = %v, want *ExceedsCapacityError", err)
	}
	if exceeds.Capacity != 100 {
		t.Fatalf("capacity = %d, want 100", exceeds.Capacity)
	}
}

func TestValidateReportsExactRemainingCapacity(t *testing.T) {
	hall := model.Hall{ID: 1, Name: "Rose Hall", Capacity: 100}
	store := newFakeStore(hall)
	a := newAdmission(store, date("2026-09-01"))
	d := date("2026-10-01")
	store.commit(hall.ID, d, 70)

	// 40 requested but only 30 left: rejected with the exact count.
	err := a.Validate(context.Background(), hall, d, 40)
	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("err = %v, want *CapacityError", err)
	}
	if capErr.Remaining != 30 {
		t.Fatalf("remaining = %d, want 30", capErr.Remaining)
	}

	// 30 fits exactly.
	if err := a.Validate(context.Background(), hall, d, 30); err != nil {
		t.Fatalf("exact-fit booking rejected: %v", err)
	}
	store.commit(hall.ID, d, 30)

	// Now the hall is full; the message must say fully booked.
	err = a.Validate(context.Background(), hall, d, 30)
	if !errors.As(err, &capErr) {
		t.Fatalf("err = %v, want *CapacityError", err)
	}
	if capErr.Remaining != 0 {
		t.Fatalf("remaining = %d, want 0", capErr.Remaining)
	}
}

func TestAcceptedSequenceNeverExceedsCapacity(t *testing.T) {
	hall := model.Hall{ID: 1, Name: "Rose Hall", Capacity: 100}
	store := newFakeStore(hall)
	a := newAdmission(store, date("2026-09-01"))
	d := date("2026-10-01")

	total := 0
	for _, tables := range []int{30, 30, 30, 30, 30} {
		if err := a.Validate(context.Background(), hall, d, tables); err != nil {
			continue
		}
		store.commit(hall.ID, d, tables)
		total += tables
	}
	if total > hall.Capacity {
		t.Fatalf("accepted %d tables, capacity is %d", total, hall.Capacity)
	}
}

func TestEvaluateFiltersFullHalls(t *testing.T) {
	rose := model.Hall{ID: 1, Name: "Rose Hall", Capacity: 100}
	lily := model.Hall{ID: 2, Name: "Lily Hall", Capacity: 80}
	store := newFakeStore(rose, lily)
	a := newAdmission(store, date("2026-09-01"))
	d := date("2026-10-01")
	store.commit(rose.ID, d, 100)

	got, err := a.Evaluate(context.Background(), d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AllLocked {
		t.Fatal("AllLocked set while a hall is still available")
	}
	if len(got.Halls) != 1 || got.Halls[0].Hall.ID != lily.ID || got.Halls[0].Remaining != 80 {
		t.Fatalf("unexpected availability: %+v", got.Halls)
	}
}

func TestEvaluateLocksWhenEveryHallIsFull(t *testing.T) {
	rose := model.Hall{ID: 1, Name: "Rose Hall", Capacity: 100}
	lily := model.Hall{ID: 2, Name: "Lily Hall", Capacity: 80}
	store := newFakeStore(rose, lily)
	a := newAdmission(store, date("2026-09-01"))
	d := date("2026-10-01")
	store.commit(rose.ID, d, 100)
	store.commit(lily.ID, d, 80)

	got, err := a.Evaluate(context.Background(), d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.AllLocked {
		t.Fatal("AllLocked not set although every hall is full")
	}
	if len(got.Halls) != 0 {
		t.Fatalf("available halls = %+v, want none", got.Halls)
	}
}

func TestEvaluateWithoutHallsIsNotLocked(t *testing.T) {
	a := newAdmission(newFakeStore(), date("2026-09-01"))

	got, err := a.Evaluate(context.Background(), date("2026-10-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AllLocked {
		t.Fatal("AllLocked set with zero halls configured")
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	rose := model.Hall{ID: 1, Name: "Rose Hall", Capacity: 100}
	store := newFakeStore(rose)
	a := newAdmission(store, date("2026-09-01"))
	d := date("2026-10-01")
	store.commit(rose.ID, d, 40)

	first, err := a.Evaluate(context.Background(), d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.Evaluate(context.Background(), d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("evaluate not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}
