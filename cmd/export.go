package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/whaletrack/whale"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the portfolio as a JSON snapshot" }
func (*exportCmd) Usage() string {
	return `wpt export [-o <file>]

  Writes the whole portfolio as a single self-contained JSON document,
  suitable for backup or for importing into another installation.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file. Defaults to stdout.")
}

func (p *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	portfolio, _, err := loadPortfolio(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if p.output != "" {
		file, err := os.Create(p.output)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := whale.BuildSnapshot(portfolio).Encode(w); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if p.output != "" {
		fmt.Printf("Exported %d transactions to %s\n", portfolio.Len(), p.output)
	}
	return subcommands.ExitSuccess
}
