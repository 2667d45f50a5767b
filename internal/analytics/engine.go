// Package analytics computes aggregate sales figures over the catalog and
// renders them as localized, deterministic answers.
//
// Everything here is a pure function of the store contents (plus the clock
// for the report header), so staff analytics answers never depend on the
// model and cannot drift.
package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sahla-io/dukkan/internal/catalog"
)

// Engine exposes aggregate figures over an immutable catalog.
type Engine struct {
	store *catalog.Store
}

// NewEngine creates an analytics engine over the given store.
func NewEngine(store *catalog.Store) *Engine {
	return &Engine{store: store}
}

// TotalRevenue is the sum of price × units_sold over all records.
func (e *Engine) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range e.store.Products() {
		total = total.Add(p.Revenue())
	}
	return total
}

// TotalUnits is the sum of units_sold over all records.
func (e *Engine) TotalUnits() int64 {
	var total int64
	for _, p := range e.store.Products() {
		total += p.UnitsSold
	}
	return total
}

// BestSeller returns the record with the highest units_sold. Ties keep the
// earliest record; ok is false on an empty catalog.
func (e *Engine) BestSeller() (best catalog.Product, ok bool) {
	products := e.store.Products()
	if len(products) == 0 {
		return catalog.Product{}, false
	}
	best = products[0]
	for _, p := range products[1:] {
		if p.UnitsSold > best.UnitsSold {
			best = p
		}
	}
	return best, true
}

// Report renders the full staff sales report: header with generation
// timestamp, summary block, top performer block, then every record sorted by
// units_sold descending (stable, so ties keep catalog order) with per-product
// revenue. Output is identical across calls except for the timestamp.
func (e *Engine) Report(now time.Time) string {
	products := e.store.Products()

	var b strings.Builder
	b.WriteString("\n=== SALES REPORT ===\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	totalRevenue := e.TotalRevenue()
	b.WriteString("Summary:\n")
	fmt.Fprintf(&b, "- Total Products: %d\n", len(products))
	fmt.Fprintf(&b, "- Total Units Sold: %d\n", e.TotalUnits())
	fmt.Fprintf(&b, "- Total Revenue: %s\n", FormatMoney(totalRevenue))
	if len(products) > 0 {
		avg := totalRevenue.Div(decimal.NewFromInt(int64(len(products))))
		fmt.Fprintf(&b, "- Average Revenue per Product: %s\n", FormatMoney(avg))
	}

	b.WriteString("\nTop Performer:\n")
	if best, ok := e.BestSeller(); ok {
		fmt.Fprintf(&b, "- Product: %s\n", best.Name)
		fmt.Fprintf(&b, "- Units Sold: %d\n", best.UnitsSold)
		fmt.Fprintf(&b, "- Revenue: %s\n", FormatMoney(best.Revenue()))
	} else {
		b.WriteString("- No products available.\n")
	}

	b.WriteString("\nProducts by Sales:\n")
	sorted := make([]catalog.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UnitsSold > sorted[j].UnitsSold
	})
	for _, p := range sorted {
		fmt.Fprintf(&b, "\n- %s: %d units (%s)", p.Name, p.UnitsSold, FormatMoney(p.Revenue()))
	}

	return b.String()
}
