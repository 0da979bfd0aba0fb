package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/whaletrack/whale"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a JSON snapshot, replacing the history" }
func (*importCmd) Usage() string {
	return `wpt import <file>

  Validates a snapshot document and replaces the current transaction
  history with its content. The document is rejected whole on the first
  invalid transaction, a failed import changes nothing.
`
}

func (*importCmd) SetFlags(_ *flag.FlagSet) {}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: want exactly one snapshot file")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	snapshot, err := whale.DecodeSnapshot(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	portfolio, source, err := loadPortfolio(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	// replace the history through the source: drop every existing record,
	// then add the snapshot's.
	for _, tx := range portfolio.All() {
		if err := source.Remove(ctx, tx.ID); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}
	if err := snapshot.Restore(portfolio); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	for _, tx := range portfolio.All() {
		if err := source.Add(ctx, tx); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Imported %d transactions from %q\n", portfolio.Len(), snapshot.PortfolioName)
	return subcommands.ExitSuccess
}
