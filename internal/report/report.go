// Package report renders aggregated expense summaries for a sender.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gastobot/internal/core"
	"gastobot/internal/ledger"
)

// Generator builds the textual report for one sender and window.
type Generator struct {
	agg ledger.Aggregator
	now func() time.Time
}

func NewGenerator(agg ledger.Aggregator) *Generator {
	return &Generator{agg: agg, now: time.Now}
}

// Generate aggregates the sender's ledger over the window and renders one
// line per category in declaration order, then a total line. A window with
// no records yields a fixed message naming the period, never an empty string.
func (g *Generator) Generate(ctx context.Context, senderID string, w core.Window) (string, error) {
	totals, err := g.agg.QueryByWindow(ctx, senderID, w, g.now())
	if err != nil {
		return "", fmt.Errorf("query window: %w", err)
	}

	if len(totals) == 0 {
		return fmt.Sprintf("📭 Você não tem gastos registrados %s.", w.Label()), nil
	}

	byCategory := make(map[core.Category]core.Money, len(totals))
	for _, ct := range totals {
		byCategory[ct.Category] = ct.Amount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 *Seus gastos %s*\n\n", w.Label())

	var total core.Money
	for _, cat := range core.Categories() {
		amount, ok := byCategory[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s: R$ %s\n", cat.Label(), amount.Format())
		total = total.Add(amount)
	}

	fmt.Fprintf(&b, "\n💰 Total: R$ %s", total.Format())
	return b.String(), nil
}
