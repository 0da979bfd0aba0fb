package renderer

import (
	"fmt"
	"strings"

	"github.com/whaletrack/whale"
)

// TransactionsMarkdown renders the transaction history in insertion order.
func TransactionsMarkdown(p *whale.Portfolio) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	if p.Len() == 0 {
		fmt.Fprintln(&b, "No transactions recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Type | Asset | Quantity | Price | Total | ID |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|:---|")
	for _, tx := range p.Transactions() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			tx.When(),
			tx.Type,
			tx.Symbol,
			whale.FormatQuantity(tx.Quantity),
			tx.PricePaid,
			tx.Notional(),
			tx.ID,
		)
	}
	return b.String()
}
