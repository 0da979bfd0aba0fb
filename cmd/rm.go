package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/whaletrack/whale"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a transaction by id" }
func (*rmCmd) Usage() string {
	return `wpt rm <transaction-id>

  Removes a transaction from the history. Ids are shown by 'wpt log'.
  There is no edit command, remove and re-add to correct a record.
`
}

func (*rmCmd) SetFlags(_ *flag.FlagSet) {}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: want exactly one transaction id")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	source, _, err := openSource(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := source.Remove(ctx, id); err != nil {
		var nf *whale.NotFoundError
		if errors.As(err, &nf) {
			fmt.Fprintf(os.Stderr, "Error: no transaction with id %q\n", nf.ID)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed transaction %s\n", id)
	return subcommands.ExitSuccess
}
