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

type topCmd struct{}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "list the top crypto assets by market cap" }
func (*topCmd) Usage() string {
	return `wpt top

  Lists the top crypto assets with their current prices. The listing is
  fetched at most once per day and cached on disk.
`
}

func (*topCmd) SetFlags(_ *flag.FlagSet) {}

func (c *topCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quotes, err := whale.TopAssets(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TopMarkdown(quotes))
	return subcommands.ExitSuccess
}
