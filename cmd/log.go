package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/whaletrack/whale/renderer"
)

type logCmd struct{}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list all transactions in the portfolio" }
func (*logCmd) Usage() string {
	return `wpt log

  Lists the transaction history in insertion order, with ids.
`
}

func (*logCmd) SetFlags(_ *flag.FlagSet) {}

func (c *logCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, _, err := loadPortfolio(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TransactionsMarkdown(p))
	return subcommands.ExitSuccess
}
