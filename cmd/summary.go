package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/whaletrack/whale"
	"github.com/whaletrack/whale/renderer"
)

type summaryCmd struct {
	offline bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the portfolio totals" }
func (*summaryCmd) Usage() string {
	return `wpt summary [-offline]

  Shows total invested capital, the current market value of the held
  positions, and the appreciation percentage.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.offline, "offline", false, "Skip the market price fetch.")
}

func (p *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	portfolio, _, err := loadPortfolio(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	prices := whale.NewPriceTable(nil)
	if !p.offline {
		prices = fetchPrices(ctx)
	}

	s := whale.Summarize(portfolio.All(), prices)
	printMarkdown(renderer.SummaryMarkdown(portfolio.Name(), s))
	return subcommands.ExitSuccess
}
