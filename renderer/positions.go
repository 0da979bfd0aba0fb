package renderer

import (
	"fmt"
	"strings"

	"github.com/whaletrack/whale"
)

// PositionsMarkdown renders the per-asset positions table. Assets with a
// known market price also show their current value.
func PositionsMarkdown(positions []whale.AssetPosition, prices *whale.PriceTable) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Positions\n\n")
	if len(positions) == 0 {
		fmt.Fprintln(&b, "No open positions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Asset | Quantity | Invested | Avg Cost | Value |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, pos := range positions {
		value := "-"
		if price, ok := prices.Price(pos.Symbol); ok {
			value = price.Mul(pos.NetQuantity).String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			pos.Symbol,
			whale.FormatQuantity(pos.NetQuantity),
			pos.TotalInvested,
			pos.AverageCost,
			value,
		)
	}
	return b.String()
}

// TopMarkdown renders the market listing of the top assets.
func TopMarkdown(quotes []whale.PriceQuote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market\n\n")
	fmt.Fprintln(&b, "| Rank | Asset | Name | Price |")
	fmt.Fprintln(&b, "|---:|:---|:---|---:|")
	for _, q := range quotes {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", q.Rank, q.Symbol, q.Name, q.CurrentPrice)
	}
	return b.String()
}
