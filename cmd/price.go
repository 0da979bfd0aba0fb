package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/whaletrack/whale"
)

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "show the current price of one asset" }
func (*priceCmd) Usage() string {
	return `wpt price <coingecko-id>

  Fetches the current price of a single asset by its CoinGecko id,
  useful for assets outside the top listing.

Usage Examples:
$ wpt price bitcoin
`
}

func (*priceCmd) SetFlags(_ *flag.FlagSet) {}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: want exactly one asset id")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	price, err := whale.SpotPrice(ctx, id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s: %s\n", id, price)
	return subcommands.ExitSuccess
}
