package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/whaletrack/whale"
)

// txCmd is the shared implementation of the buy and sell commands.
type txCmd struct {
	typ  whale.TransactionType
	date string
}

type buyCmd struct{ txCmd }
type sellCmd struct{ txCmd }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of a crypto asset" }
func (*buyCmd) Usage() string {
	return `wpt buy [-d <date>] <symbol> <quantity> <price>

  Records a buy: quantity of the asset and the unit price paid in USD.

Usage Examples:
$ wpt buy BTC 0.5 40000
`
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of a crypto asset" }
func (*sellCmd) Usage() string {
	return `wpt sell [-d <date>] <symbol> <quantity> <price>

  Records a sell: quantity of the asset and the unit price received in USD.

Usage Examples:
$ wpt sell BTC 0.25 52000
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Transaction date (YYYY-MM-DD). Defaults to today.")
}

func (p *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p.typ = whale.Buy
	return p.record(ctx, f)
}

func (p *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p.typ = whale.Sell
	return p.record(ctx, f)
}

func (p *txCmd) record(ctx context.Context, f *flag.FlagSet) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintf(os.Stderr, "Error: want <symbol> <quantity> <price>, got %d arguments\n", f.NArg())
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	quantity, err := decimal.NewFromString(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid quantity %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", f.Arg(2), err)
		return subcommands.ExitUsageError
	}

	on := whale.Today()
	if p.date != "" {
		on, err = whale.ParseDate(p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	tx, err := whale.NewTransaction(symbol, whale.Q(quantity), whale.USD(price), p.typ, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	source, _, err := openSource(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := source.Add(ctx, tx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s %s at %s (id %s)\n", tx.Type, whale.FormatQuantity(tx.Quantity), tx.Symbol, tx.PricePaid, tx.ID)
	return subcommands.ExitSuccess
}
