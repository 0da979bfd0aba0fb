// Package cmd implements the CLI application to track a crypto portfolio.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/whaletrack/whale"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		c.Register(cmd, "")
	}
}

// Commands lists every subcommand, also used to build shell completion.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&buyCmd{},
		&sellCmd{},
		&rmCmd{},
		&logCmd{},
		&positionsCmd{},
		&summaryCmd{},
		&topCmd{},
		&priceCmd{},
		&exportCmd{},
		&importCmd{},
		&assistCmd{},
		&topicCmd{},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("file", "portfolio.jsonl", "Path to the local portfolio file (JSONL format), used in anonymous mode")
var apiURL = flag.String("api-url", os.Getenv("WHALE_API_URL"), "Base URL of the hosted API. Empty means anonymous local mode")
var apiToken = flag.String("api-token", os.Getenv("WHALE_API_TOKEN"), "Bearer token for the hosted API")
var portfolioName = flag.String("portfolio", "", "Remote portfolio id or name. Defaults to the only one if a single portfolio exists")

// openSource opens the transaction source selected by the global flags and
// returns it with the portfolio's display name.
func openSource(ctx context.Context) (whale.TransactionSource, string, error) {
	if *apiURL == "" {
		store := whale.NewFileStore(*portfolioFile)
		return store, store.Name(), nil
	}

	session := whale.NewSession(*apiToken)
	remote, err := resolvePortfolio(ctx, session)
	if err != nil {
		return nil, "", err
	}
	return whale.NewRemoteStore(*apiURL, session, remote.ID), remote.Name, nil
}

// resolvePortfolio maps the -portfolio flag to a remote portfolio.
func resolvePortfolio(ctx context.Context, session *whale.Session) (whale.RemotePortfolio, error) {
	store := whale.NewRemoteStore(*apiURL, session, "")
	list, err := store.Portfolios(ctx)
	if err != nil {
		return whale.RemotePortfolio{}, err
	}
	if *portfolioName == "" {
		if len(list) == 1 {
			return list[0], nil
		}
		return whale.RemotePortfolio{}, fmt.Errorf("found %d remote portfolios, select one with -portfolio", len(list))
	}
	for _, p := range list {
		if p.ID == *portfolioName || p.Name == *portfolioName {
			return p, nil
		}
	}
	return whale.RemotePortfolio{}, fmt.Errorf("could not find remote portfolio %q", *portfolioName)
}

// loadPortfolio reads the whole history from the source into a Portfolio.
func loadPortfolio(ctx context.Context) (*whale.Portfolio, whale.TransactionSource, error) {
	source, name, err := openSource(ctx)
	if err != nil {
		return nil, nil, err
	}
	txs, err := source.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	p := whale.NewPortfolio(name)
	if err := p.Append(txs...); err != nil {
		return nil, nil, err
	}
	return p, source, nil
}

// fetchPrices retrieves the market listing. A fetch failure degrades to an
// empty table with a warning, the reports then show invested figures only.
func fetchPrices(ctx context.Context) *whale.PriceTable {
	quotes, err := whale.TopAssets(ctx)
	if err != nil {
		log.Printf("warning: could not fetch market prices: %v", err)
		return whale.NewPriceTable(nil)
	}
	return whale.NewPriceTable(quotes)
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
