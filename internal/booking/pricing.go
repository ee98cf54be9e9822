package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/wedding-venue-booking/internal/model"
	"github.com/iliyamo/wedding-venue-booking/internal/utils"
)

// Pricer computes invoice totals and human-readable menu breakdowns.
// All arithmetic is in integer cents so repeated additions never
// accumulate floating-point drift; display rounding is left to the
// presentation layer.
type Pricer struct {
	catalog *Catalog
}

// NewPricer returns a Pricer using the given catalog for combo
// decomposition.
func NewPricer(catalog *Catalog) *Pricer {
	if catalog == nil {
		panic("nil catalog passed to NewPricer")
	}
	return &Pricer{catalog: catalog}
}

// Total computes the invoice total in cents:
//
//	total = (sum of selected item prices) * tables + hall fee
//
// Each selected combo contributes its own flat price; component rows
// never participate in pricing.  The hall fee is added once per
// booking, not per table.  An empty selection prices to the hall fee
// alone.  tables must already have passed admission; zero tables
// never reaches this method.
func (p *Pricer) Total(hall model.Hall, tables int, items []model.MenuItem) int64 {
	var perTable int64
	for _, item := range items {
		perTable += item.PriceCents
	}
	return perTable*int64(tables) + hall.FeePerTableCents
}

// Breakdown is the result of describing a menu selection.  Degraded
// is set when at least one combo had a dangling component reference;
// the text still covers everything that could be resolved.
type Breakdown struct {
	Text     string
	Combos   int
	Singles  int
	Degraded bool
}

// DescribeSelection renders a line per selected item, decomposing
// combos into their component dishes with quantities.  A combo whose
// component list is empty is explicitly marked "not configured"
// rather than omitted.  Dangling component references degrade the
// breakdown (partial contents plus a warning marker) instead of
// failing the whole description, since they affect display detail
// only, never the charged total.
func (p *Pricer) DescribeSelection(ctx context.Context, items []model.MenuItem) (Breakdown, error) {
	var b Breakdown
	lines := make([]string, 0, len(items))
	for _, item := range items {
		if !p.catalog.IsCombo(item) {
			b.Singles++
			lines = append(lines, fmt.Sprintf("%s – %s (single)", item.Title, utils.FormatCents(item.PriceCents)))
			continue
		}
		b.Combos++
		components, err := p.catalog.ResolveComponents(ctx, item)
		partial := false
		if err != nil {
			var inc *InconsistencyError
			if !errors.As(err, &inc) {
				return Breakdown{}, err
			}
			partial = true
			b.Degraded = true
		}
		lines = append(lines, describeCombo(item, components, partial))
	}
	b.Text = strings.Join(lines, "\n")
	return b, nil
}

func describeCombo(combo model.MenuItem, components []Component, degraded bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s – %s (combo: ", combo.Title, utils.FormatCents(combo.PriceCents))
	switch {
	case len(components) == 0 && degraded:
		sb.WriteString("contents unavailable")
	case len(components) == 0:
		sb.WriteString("not configured")
	default:
		for i, comp := range components {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s x%d", comp.Item.Title, comp.Quantity)
		}
		if degraded {
			sb.WriteString(", …")
		}
	}
	sb.WriteString(")")
	return sb.String()
}
