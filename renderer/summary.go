package renderer

import (
	"fmt"
	"strings"

	"github.com/whaletrack/whale"
)

// SummaryMarkdown renders the portfolio totals as the dashboard cards.
func SummaryMarkdown(name string, s whale.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintln(&b, "| Total Invested | Current Value | Appreciation |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s |\n",
		s.TotalInvested,
		s.CurrentValue,
		s.Appreciation.SignedString(),
	)
	return b.String()
}
