package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/wedding-venue-booking/internal/model"
)

func TestResolveComponentsRejectsNonCombo(t *testing.T) {
	catalog := NewCatalog(newFakeStore())
	single := model.MenuItem{ID: 1, Title: "Lotus Tea", Kind: model.KindSingle}

	if _, err := catalog.ResolveComponents(context.Background(), single); !errors.Is(err, ErrNotCombo) {
		t.Fatalf("err = %v, want ErrNotCombo", err)
	}
}

func TestResolveComponentsEmptyComboIsNotAnError(t *testing.T) {
	store := newFakeStore()
	combo := model.MenuItem{ID: 20, Title: "Banquet Set", Kind: model.KindCombo}
	catalog := NewCatalog(store)

	got, err := catalog.ResolveComponents(context.Background(), combo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("components = %+v, want empty", got)
	}
}

func TestResolveComponentsFailsOnNestedCombo(t *testing.T) {
	store := newFakeStore()
	combo := model.MenuItem{ID: 20, Title: "Banquet Set", Kind: model.KindCombo}
	store.components[combo.ID] = []Component{
		{Item: model.MenuItem{ID: 21, Title: "Inner Set", Kind: model.KindCombo}, Quantity: 1},
	}
	catalog := NewCatalog(store)

	if _, err := catalog.ResolveComponents(context.Background(), combo); !errors.Is(err, ErrNestedCombo) {
		t.Fatalf("err = %v, want ErrNestedCombo", err)
	}
}

func TestResolveComponentsReportsDanglingReference(t *testing.T) {
	store := newFakeStore()
	combo := model.MenuItem{ID: 20, Title: "Banquet Set", Kind: model.KindCombo}
	store.components[combo.ID] = []Component{
		{Item: model.MenuItem{ID: 21, Title: "Spring Rolls", Kind: model.KindSingle}, Quantity: 2},
		{Item: model.MenuItem{}, Quantity: 1},
	}
	catalog := NewCatalog(store)

	got, err := catalog.ResolveComponents(context.Background(), combo)
	var inc *InconsistencyError
	if !errors.As(err, &inc) {
		t.Fatalf("err = %v, want *InconsistencyError", err)
	}
	if inc.ComboID != combo.ID {
		t.Fatalf("ComboID = %d, want %d", inc.ComboID, combo.ID)
	}
	if len(got) != 1 || got[0].Item.ID != 21 {
		t.Fatalf("partial decomposition = %+v, want the surviving component", got)
	}
}
