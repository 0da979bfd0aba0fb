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

type positionsCmd struct {
	offline bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "show per-asset positions" }
func (*positionsCmd) Usage() string {
	return `wpt positions [-offline]

  Groups the history by asset and shows net quantity, invested capital,
  average cost, and the current value when a market price is known.
`
}

func (p *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.offline, "offline", false, "Skip the market price fetch.")
}

func (p *positionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	portfolio, _, err := loadPortfolio(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	prices := whale.NewPriceTable(nil)
	if !p.offline {
		prices = fetchPrices(ctx)
	}

	positions := whale.GroupBySymbol(portfolio.All())
	printMarkdown(renderer.PositionsMarkdown(positions, prices))
	return subcommands.ExitSuccess
}
