package booking

import (
	"context"
	"strings"
	"testing"

	"github.com/iliyamo/wedding-venue-booking/internal/model"
)

func TestTotalFormula(t *testing.T) {
	// fee $50, one item at $35, 30 tables: 35*30 + 50 = $1100.
	hall := model.Hall{ID: 1, Name: "Rose Hall", Capacity: 100, FeePerTableCents: 5000}
	item := model.MenuItem{ID: 10, Title: "Roast Duck", PriceCents: 3500, Kind: model.KindSingle}
	pricer := NewPricer(NewCatalog(newFakeStore(hall)))

	got := pricer.Total(hall, 30, []model.MenuItem{item})
	if got != 110000 {
		t.Fatalf("total = %d cents, want 110000", got)
	}
}

func TestTotalHallFeeAddedOncePerBooking(t *testing.T) {
	hall := model.Hall{ID: 1, FeePerTableCents: 5000}
	item := model.MenuItem{ID: 10, PriceCents: 1000, Kind: model.KindSingle}
	pricer := NewPricer(NewCatalog(newFakeStore(hall)))

	for _, tables := range []int{30, 60, 120} {
		got := pricer.Total(hall, tables, []model.MenuItem{item})
		want := 1000*int64(tables) + 5000
		if got != want {
			t.Fatalf("tables=%d: total = %d, want %d", tables, got, want)
		}
	}
}

func TestTotalEmptySelectionIsFeeOnly(t *testing.T) {
	hall := model.Hall{ID: 1, FeePerTableCents: 5000}
	pricer := NewPricer(NewCatalog(newFakeStore(hall)))

	for _, tables := range []int{30, 77, 500} {
		if got := pricer.Total(hall, tables, nil); got != 5000 {
			t.Fatalf("tables=%d: total = %d, want hall fee 5000", tables, got)
		}
	}
}

func TestTotalCombosUseFlatPrice(t *testing.T) {
	// The combo sells for $80 even though its components sum to $95.
	hall := model.Hall{ID: 1, FeePerTableCents: 5000}
	store := newFakeStore(hall)
	combo := model.MenuItem{ID: 20, Title: "Banquet Set", PriceCents: 8000, Kind: model.KindCombo}
	store.components[combo.ID] = []Component{
		{Item: model.MenuItem{ID: 21, Title: "Spring Rolls", PriceCents: 2500, Kind: model.KindSingle}, Quantity: 2},
		{Item: model.MenuItem{ID: 22, Title: "Steamed Fish", PriceCents: 4500, Kind: model.KindSingle}, Quantity: 1},
	}
	pricer := NewPricer(NewCatalog(store))

	got := pricer.Total(hall, 30, []model.MenuItem{combo})
	if got != 8000*30+5000 {
		t.Fatalf("total = %d, want %d (combo priced flat)", got, 8000*30+5000)
	}
}

func TestDescribeSelectionDecomposesCombos(t *testing.T) {
	store := newFakeStore()
	combo := model.MenuItem{ID: 20, Title: "Banquet Set", PriceCents: 8000, Kind: model.KindCombo}
	store.components[combo.ID] = []Component{
		{Item: model.MenuItem{ID: 21, Title: "Spring Rolls", Kind: model.KindSingle}, Quantity: 2},
		{Item: model.MenuItem{ID: 22, Title: "Steamed Fish", Kind: model.KindSingle}, Quantity: 1},
	}
	single := model.MenuItem{ID: 30, Title: "Lotus Tea", PriceCents: 500, Kind: model.KindSingle}
	pricer := NewPricer(NewCatalog(store))

	b, err := pricer.DescribeSelection(context.Background(), []model.MenuItem{combo, single})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Combos != 1 || b.Singles != 1 || b.Degraded {
		t.Fatalf("unexpected counts: %+v", b)
	}
	if !strings.Contains(b.Text, "Spring Rolls x2") || !strings.Contains(b.Text, "Steamed Fish x1") {
		t.Fatalf("combo contents missing from breakdown:\n%s", b.Text)
	}
	if !strings.Contains(b.Text, "Lotus Tea") {
		t.Fatalf("single item missing from breakdown:\n%s", b.Text)
	}
}

func TestDescribeSelectionMarksUnconfiguredCombo(t *testing.T) {
	store := newFakeStore()
	combo := model.MenuItem{ID: 20, Title: "Banquet Set", PriceCents: 8000, Kind: model.KindCombo}
	pricer := NewPricer(NewCatalog(store))

	b, err := pricer.DescribeSelection(context.Background(), []model.MenuItem{combo})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(b.Text, "Banquet Set") || !strings.Contains(b.Text, "not configured") {
		t.Fatalf("empty combo not marked as unconfigured:\n%s", b.Text)
	}
}

func TestDescribeSelectionDegradesOnDanglingComponent(t *testing.T) {
	store := newFakeStore()
	combo := model.MenuItem{ID: 20, Title: "Banquet Set", PriceCents: 8000, Kind: model.KindCombo}
	store.components[combo.ID] = []Component{
		{Item: model.MenuItem{ID: 21, Title: "Spring Rolls", Kind: model.KindSingle}, Quantity: 2},
		{Item: model.MenuItem{}, Quantity: 1}, // deleted after authoring
	}
	pricer := NewPricer(NewCatalog(store))

	b, err := pricer.DescribeSelection(context.Background(), []model.MenuItem{combo})
	if err != nil {
		t.Fatalf("degraded breakdown must not fail: %v", err)
	}
	if !b.Degraded {
		t.Fatal("Degraded flag not set for dangling component")
	}
	if !strings.Contains(b.Text, "Spring Rolls x2") {
		t.Fatalf("resolved components dropped from degraded breakdown:\n%s", b.Text)
	}
}
